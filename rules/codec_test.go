package rules

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSheet() *Stylesheet {
	ss := NewStylesheet()
	ss.Rules.Container = append(ss.Rules.Container, ContainerRule{Selector: ".cta", Container: ".card"})
	ss.Rules.Order = append(ss.Rules.Order, OrderRule{Selector: ".price", Order: -1})
	ss.MediaQueries = append(ss.MediaQueries, MediaLayer{
		Directive: "print",
		Rules:     RuleSet{Order: []OrderRule{{Selector: ".cta", Order: 9}}},
	})
	ss.normalize()
	return ss
}

func TestCodecYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSheet().Encode(&buf, YAML))
	assert.Contains(t, buf.String(), "mediaQueries:")
	ss, err := Load(&buf, YAML)
	require.NoError(t, err)
	assert.Equal(t, sampleSheet(), ss)
}

func TestCodecJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleSheet().Encode(&buf, JSON))
	ss, err := Load(&buf, JSON)
	require.NoError(t, err)
	assert.Equal(t, sampleSheet(), ss)
}

func TestLoadEmptyInput(t *testing.T) {
	ss, err := Load(strings.NewReader(""), JSON)
	require.NoError(t, err)
	assert.True(t, ss.Empty())
	assert.NotNil(t, ss.MediaQueries)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("{ rules: "), JSON)
	assert.Error(t, err)
}

func TestFormats(t *testing.T) {
	f, err := ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = ParseFormat("toml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, YAML, FormatForPath("rules/site.yaml"))
	assert.Equal(t, JSON, FormatForPath("rules/site"))
}

func TestMerge(t *testing.T) {
	ss := Merge(sampleSheet(), nil, sampleSheet())
	assert.Equal(t, 2, len(ss.Rules.Container))
	assert.Equal(t, 2, len(ss.MediaQueries))
	var nilSheet *Stylesheet
	assert.True(t, nilSheet.Empty())
}
