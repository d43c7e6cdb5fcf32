package tempura_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mmr-tortoise/fry-tempura/pkg/tempura"
)

// TestContext_FromOutsidePackage drives the library the way a template
// script host does: through a Context built from exported types only.
func TestContext_FromOutsidePackage(t *testing.T) {
	buf := tempura.NewBuffer("- b\n- c\n- a")
	buf.Select(tempura.Position{Line: 0}, tempura.Position{Line: 2, Ch: 3})

	var notices []string
	ctx := tempura.Context{
		Editor:   buf,
		Notifier: tempura.NotifierFunc(func(msg string) { notices = append(notices, msg) }),
	}

	tempura.SortSelectionLines(ctx.Editor, tempura.OrderDesc)
	ctx.Notify("sorted")

	assert.Equal(t, "- c\n- b\n- a", buf.GetValue())
	assert.Equal(t, []string{"sorted"}, notices)
}
