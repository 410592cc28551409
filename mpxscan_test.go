package mpxscan_test

import (
	"testing"

	"bennypowers.dev/mpxscan"
	"bennypowers.dev/mpxscan/position"
	"bennypowers.dev/mpxscan/sourcetype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<template>
  <view>{{message}}</view>
</template>
<script lang="ts">
import { createPage } from '@mpxjs/core'
createPage({ data: { message: 'hi' } })
</script>
<script type="application/json">
{ "usingComponents": {} }
</script>
`

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, mpxscan.IsSupportedLanguage("mpx"))
	assert.False(t, mpxscan.IsSupportedLanguage("html"))
	assert.False(t, mpxscan.IsSupportedLanguage(""))
}

func TestLanguageIDForPath(t *testing.T) {
	assert.Equal(t, "mpx", mpxscan.LanguageIDForPath("src/pages/index.mpx"))
	assert.Equal(t, "", mpxscan.LanguageIDForPath("src/pages/index.vue"))
	assert.Equal(t, "", mpxscan.LanguageIDForPath("mpx"))
}

func TestScriptRegions(t *testing.T) {
	regions := mpxscan.ScriptRegions(page, "mpx")
	require.Len(t, regions, 2)

	assert.True(t, regions[0].Type.IsTypeScript())
	assert.Contains(t, regions[0].Source, "createPage")
	assert.Contains(t, regions[1].Source, "usingComponents")

	// offsets translate back into document coordinates for diagnostics
	pos := position.OffsetToPosition(page, int(regions[0].Start))
	assert.Equal(t, uint32(3), pos.Line, "script body begins at the end of the opening tag line")
}

func TestScriptRegionsUnsupportedLanguage(t *testing.T) {
	assert.Nil(t, mpxscan.ScriptRegions(page, "vue"))
	assert.Nil(t, mpxscan.ScriptRegions(page, ""))
}

func TestScriptRegionsForPath(t *testing.T) {
	regions := mpxscan.ScriptRegionsForPath("pages/index.mpx", page)
	require.Len(t, regions, 2)
	assert.Equal(t, mpxscan.ScriptRegions(page, "mpx"), regions)

	assert.Nil(t, mpxscan.ScriptRegionsForPath("pages/index.wxml", page))
}

func TestScriptRegionsWithRegistry(t *testing.T) {
	registry := sourcetype.NewRegistry()
	registry.Register("xts", sourcetype.SourceType{
		Language:   sourcetype.TypeScript,
		ModuleKind: sourcetype.Module,
		JSX:        true,
	})

	source := `<script lang="xts">const el = <view/></script>`

	regions := mpxscan.ScriptRegionsWithRegistry(source, "mpx", registry)
	require.Len(t, regions, 1)
	assert.True(t, regions[0].Type.JSX, "token contains x, JSX stays enabled")

	assert.Empty(t, mpxscan.ScriptRegions(source, "mpx"), "default registry does not know xts")
}
