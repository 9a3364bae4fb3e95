package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"marketplace/internal/domain"
	"marketplace/internal/validate"
)

func TestTitleCase(t *testing.T) {
	cases := map[string]string{
		"  iPHONE   12 ": "Iphone 12",
		"alice":          "Alice",
		"":               "",
		"   ":            "",
		"élan vital":     "Élan Vital",
	}
	for in, want := range cases {
		assert.Equal(t, want, validate.TitleCase(in), "%q", in)
	}
}

func TestCategory(t *testing.T) {
	c, ok := validate.Category(" home ")
	assert.True(t, ok)
	assert.Equal(t, domain.Home, c)

	_, ok = validate.Category("Garden")
	assert.False(t, ok)
}

func TestCondition(t *testing.T) {
	for in, want := range map[string]domain.Condition{
		"new":        domain.New,
		" like new ": domain.LikeNew,
		"VERY_GOOD":  domain.VeryGood,
		"acceptable": domain.Acceptable,
	} {
		c, ok := validate.Condition(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, c)
	}
	for _, bad := range []string{"", "mint", "GOOD!", "like  new  ish"} {
		_, ok := validate.Condition(bad)
		assert.False(t, ok, bad)
	}
}

func TestBack(t *testing.T) {
	assert.True(t, validate.Back("cd .."))
	assert.True(t, validate.Back("  CD ..  "))
	assert.False(t, validate.Back("cd"))
	assert.False(t, validate.Back(".."))
}

func TestQty(t *testing.T) {
	n, ok := validate.Qty(" 3 ", 1, 0)
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = validate.Qty("0", 1, 0)
	assert.False(t, ok)
	_, ok = validate.Qty("6", 1, 5)
	assert.False(t, ok)
	_, ok = validate.Qty("2.5", 1, 0)
	assert.False(t, ok)
}

func TestPrice(t *testing.T) {
	p, ok := validate.Price("12.50")
	assert.True(t, ok)
	assert.Equal(t, "12.50", p.StringFixed(2))

	for _, bad := range []string{"", "0", "-3", "abc", "1e3", "$5"} {
		_, ok := validate.Price(bad)
		assert.False(t, ok, bad)
	}
}
