// Copyright 2026 Peter Edge
//
// All rights reserved.

package xos

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandHome(t *testing.T) {
	t.Parallel()
	homeDirPath, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	for _, test := range []struct {
		input    string
		expected string
	}{
		{input: "", expected: ""},
		{input: "/etc/ibflex.env", expected: "/etc/ibflex.env"},
		{input: "relative/.env", expected: "relative/.env"},
		{input: "~", expected: homeDirPath},
		{input: "~/.config/ibflex/.env", expected: filepath.Join(homeDirPath, ".config", "ibflex", ".env")},
	} {
		actual, err := ExpandHome(test.input)
		require.NoError(t, err)
		require.Equal(t, test.expected, actual)
	}
	_, err = ExpandHome("~someone/.env")
	require.ErrorContains(t, err, "only ~ and ~/ are supported")
}
