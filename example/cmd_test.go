// SPDX-License-Identifier: Apache-2.0
// Copyright 2022 Jussi Maki

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	Level     string  `json:"level"`
	Message   string  `json:"message"`
	Scenario  string  `json:"scenario"`
	Observer  string  `json:"observer"`
	Value     *int    `json:"value"`
	Error     *string `json:"error"`
	Exhausted *bool   `json:"exhausted"`
	Disposed  *bool   `json:"disposed"`
}

func runCmd(t *testing.T, args ...string) []logLine {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--log-format=json"}, args...))
	require.NoError(t, cmd.Execute())

	var lines []logLine
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var line logLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	return lines
}

// observed returns the observer's events as strings.
func observed(lines []logLine) []string {
	var events []string
	for _, l := range lines {
		if l.Observer == "" {
			continue
		}
		switch {
		case l.Value != nil:
			events = append(events, l.Message+":"+strconv.Itoa(*l.Value))
		case l.Error != nil:
			events = append(events, l.Message+":"+*l.Error)
		default:
			events = append(events, l.Message)
		}
	}
	return events
}

func TestOfScenario(t *testing.T) {
	lines := runCmd(t, "of", "--value=42")
	assert.Equal(t, []string{"next:42", "complete"}, observed(lines))

	require.Len(t, lines, 5)
	assert.Equal(t, "subscribing", lines[0].Message)
	assert.Equal(t, "of", lines[0].Scenario)
	assert.Equal(t, "IntObs", lines[1].Observer)
	require.NotNil(t, lines[3].Exhausted)
	assert.True(t, *lines[3].Exhausted)
	require.NotNil(t, lines[4].Disposed)
	assert.True(t, *lines[4].Disposed)
}

func TestFromScenario(t *testing.T) {
	lines := runCmd(t, "from", "--id=Series")
	assert.Equal(t,
		[]string{"next:1", "next:-2", "next:3", "next:-4", "next:5", "next:-6", "next:7", "complete"},
		observed(lines))
	for _, l := range lines {
		if l.Observer != "" {
			assert.Equal(t, "Series", l.Observer)
		}
	}
}

func TestMapScenario(t *testing.T) {
	lines := runCmd(t, "map")
	assert.Equal(t, []string{"next:2", "next:6", "next:10", "next:14", "complete"}, observed(lines))

	lines = runCmd(t, "map", "--series=10, 20 ,30")
	assert.Equal(t, []string{"next:20", "next:60", "complete"}, observed(lines))
}

func TestThrowScenario(t *testing.T) {
	lines := runCmd(t, "throw", "--error=boom")
	assert.Equal(t, []string{"error:boom", "complete"}, observed(lines))
}

func TestAllScenarios(t *testing.T) {
	// 1. without a sub-command, 2. with 'all'
	for _, args := range [][]string{{}, {"all"}} {
		lines := runCmd(t, args...)
		var order []string
		for _, l := range lines {
			if l.Message == "subscribing" {
				order = append(order, l.Scenario)
			}
		}
		assert.Equal(t, []string{"of", "from", "map", "throw"}, order, "args %v", args)
	}
}

func TestLogLevelFiltersNarration(t *testing.T) {
	lines := runCmd(t, "throw", "--log-level=error")
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0].Level)
}

func TestEnvConfig(t *testing.T) {
	t.Setenv("OBSDEMO_SERIES", "3,4")
	t.Setenv("OBSDEMO_ID", "FromEnv")
	lines := runCmd(t, "from")
	assert.Equal(t, []string{"next:3", "next:4", "complete"}, observed(lines))
	assert.Equal(t, "FromEnv", lines[1].Observer)
}

func TestInvalidConfig(t *testing.T) {
	for _, args := range [][]string{
		{"--log-level=loud"},
		{"--log-format=xml"},
		{"--pace=-1"},
		{"from", "--series=1,x"},
	} {
		var out bytes.Buffer
		cmd := newRootCmd(&out)
		cmd.SetArgs(args)
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}

func TestParseSeries(t *testing.T) {
	series, err := parseSeries("")
	require.NoError(t, err)
	assert.Empty(t, series)

	series, err = parseSeries(" 1, -2 ")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2}, series)

	_, err = parseSeries("1,,2")
	assert.Error(t, err)
}
