package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDoctypeBareHTML(t *testing.T) {
	name, pub, sys, fq := parseDoctype("html")
	assert.Equal(t, "html", name)
	assert.Equal(t, missing, pub)
	assert.Equal(t, missing, sys)
	assert.False(t, fq)
}

func TestParseDoctypePublicAndSystem(t *testing.T) {
	name, pub, sys, _ := parseDoctype(`html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd"`)
	assert.Equal(t, "html", name)
	assert.Equal(t, "-//W3C//DTD HTML 4.01//EN", pub)
	assert.Equal(t, "http://www.w3.org/TR/html4/strict.dtd", sys)
}

func TestParseDoctypeEmptyNameForcesQuirks(t *testing.T) {
	_, _, _, fq := parseDoctype("")
	assert.True(t, fq)
}

func TestIsForceQuirksLegacyPublicID(t *testing.T) {
	assert.True(t, isForceQuirks("html", "-//W3C//DTD HTML 4.0 Transitional//EN", missing, false))
}

func TestIsForceQuirksOrdinaryHTML5(t *testing.T) {
	assert.False(t, isForceQuirks("html", missing, missing, false))
}

func TestIsLimitedQuirksXHTML1Transitional(t *testing.T) {
	assert.True(t, isLimitedQuirks("-//W3C//DTD XHTML 1.0 Transitional//EN", missing))
}
