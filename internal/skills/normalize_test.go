package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_SplitsTrimsAndLowercases(t *testing.T) {
	got := Normalize([]string{" Python , SQL", "Docker "})
	assert.Equal(t, []string{"docker", "python", "sql"}, got)
}

func TestNormalize_DropsEmptyAndDuplicates(t *testing.T) {
	got := Normalize([]string{"go, , Go", "", "  ", "go"})
	assert.Equal(t, []string{"go"}, got)
}

func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize([]string{}))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize([]string{"React , NODE.js", "aws,AWS"})
	twice := Normalize(once)
	assert.Equal(t, once, twice)
}

func TestNormalizeList_DelimitedString(t *testing.T) {
	got := NormalizeList("Kubernetes, Terraform , kubernetes")
	assert.Equal(t, []string{"kubernetes", "terraform"}, got)
}

func TestNormalizeList_Empty(t *testing.T) {
	assert.Empty(t, NormalizeList(""))
	assert.Empty(t, NormalizeList("   "))
}
