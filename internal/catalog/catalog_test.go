package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mercellinas/mia-bot/internal/catalog"
)

func TestLookup(t *testing.T) {
	s, ok := catalog.Lookup("Pixie")
	require.True(t, ok)
	assert.Equal(t, "wig_images/pixie.jpg", s.ImagePath)

	_, ok = catalog.Lookup("pixie")
	assert.False(t, ok, "lookup is case sensitive")

	_, ok = catalog.Lookup("Mohawk")
	assert.False(t, ok)
}

func TestStylesOrderAndCopy(t *testing.T) {
	got := catalog.Styles()
	names := make([]string, 0, len(got))
	for _, s := range got {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Pixie", "Bob", "Fringe", "Frontal"}, names)

	got[0].Name = "changed"
	assert.Equal(t, "Pixie", catalog.Styles()[0].Name)
}

func TestContactBlockIsTwoLines(t *testing.T) {
	lines := strings.Split(catalog.ContactBlock, "\n")
	assert.Equal(t, []string{"📞 WhatsApp: +254706360967", "📸 Instagram: @mercellinas_hair"}, lines)
}

func TestCaption(t *testing.T) {
	c := catalog.Caption("Pixie")
	assert.Contains(t, c, "Pixie wig")
	assert.True(t, strings.HasSuffix(c, catalog.ContactBlock))
}

func TestRandomPickerIsSeedable(t *testing.T) {
	pool := catalog.Tips()
	a := catalog.NewRandomPicker[string](42)
	b := catalog.NewRandomPicker[string](42)
	for i := 0; i < 20; i++ {
		pa := a.Pick(pool)
		assert.Equal(t, pa, b.Pick(pool))
		assert.Contains(t, pool, pa)
	}
}
