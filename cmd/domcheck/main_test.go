package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haukened/domcheck/internal/dns/config"
	"github.com/haukened/domcheck/internal/dns/gateways/batch"
)

func TestApplication_DefaultScenario(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	input := "4\ngdz.ru\nmaps.me\nm.gdz.ru\ncom\n" +
		"7\ngdz.ru\ngdz.com\nm.maps.me\nalg.m.gdz.ru\nmaps.com\nmaps.ru\ngdz.ua\n"

	var out bytes.Buffer
	require.NoError(t, buildApplication(cfg).Run(context.Background(), strings.NewReader(input), &out))
	assert.Equal(t, "Bad\nBad\nBad\nBad\nBad\nGood\nGood\n", out.String())
}

func TestApplication_ConfigVariantsAgree(t *testing.T) {
	input := "3\nhabr.com\nleetcode.com\nru.wiki.net\n" +
		"6\nhabr.com\nm.habr.com\nwiki.net\nen.ru.wiki.net\nleetcode.org\ncom\n"
	want := "Bad\nBad\nGood\nBad\nGood\nGood\n"

	variants := []config.AppConfig{
		{Env: "prod", LogLevel: "error", CacheSize: 0, BloomFPRate: 0.01, DisableBloom: true},
		{Env: "prod", LogLevel: "error", CacheSize: 1, BloomFPRate: 0.5},
		{Env: "dev", LogLevel: "error", CacheSize: 1024, BloomFPRate: 0.001},
	}
	for _, cfg := range variants {
		var out bytes.Buffer
		require.NoError(t, buildApplication(&cfg).Run(context.Background(), strings.NewReader(input), &out))
		assert.Equal(t, want, out.String(), "config %+v", cfg)
	}
}

func TestApplication_MalformedCount(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	err = buildApplication(cfg).Run(context.Background(), strings.NewReader("lots\n"), &bytes.Buffer{})
	var mce *batch.MalformedCountError
	require.ErrorAs(t, err, &mce)
}

func TestRepositoryFactory_NegativeCacheSizeDisablesCache(t *testing.T) {
	cfg := &config.AppConfig{Env: "prod", LogLevel: "error", CacheSize: -5, BloomFPRate: 0.01}
	out := &bytes.Buffer{}
	require.NoError(t, buildApplication(cfg).Run(context.Background(), strings.NewReader("1\ncom\n1\na.com\n"), out))
	assert.Equal(t, "Bad\n", out.String())
}
