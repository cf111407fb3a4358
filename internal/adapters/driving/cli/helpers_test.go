package cli

import (
	"bytes"
	"testing"

	"github.com/custodia-labs/sbml2biopax/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/sbml2biopax/internal/celldesigner"
	"github.com/custodia-labs/sbml2biopax/internal/core/services"
	"github.com/custodia-labs/sbml2biopax/internal/testhelpers"
)

// setupTestServices wires memory-backed services and seeds model.xml with
// the kinase fixture. Everything is reset when the test ends.
func setupTestServices(t *testing.T) *memory.FileSink {
	t.Helper()

	files := memory.NewFileSink()
	files.Put("model.xml", []byte(testhelpers.KinaseModel().XML()))

	settings := services.NewSettingsService(memory.NewConfigStore())
	conversion := services.NewConversionService(celldesigner.New(), newPathwayWriter, files, settings)
	SetServices(Services{
		Conversion: conversion,
		Watch:      services.NewWatchService(conversion, settings),
		Settings:   settings,
		ConfigPath: ":memory:",
	})

	t.Cleanup(func() {
		SetServices(Services{})
		convertIndent = -1
		convertLocationStyle = ""
		convertNoDeclaration = false
		inspectFormat = formatText
		verbose = false
		watchTUI = false
	})
	return files
}

// execute runs rootCmd with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}
