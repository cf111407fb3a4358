// Package mcp provides an MCP (Model Context Protocol) server adapter for sbml2biopax.
// It lets AI assistants convert CellDesigner models and inspect their contents.
package mcp

import "errors"

var (
	// ErrInvalidPorts is returned when no ports are provided.
	ErrInvalidPorts = errors.New("mcp: ports are required")

	// ErrMissingConversionService is returned when the conversion service is not provided.
	ErrMissingConversionService = errors.New("mcp: conversion service is required")

	// ErrMissingSettingsService is returned when the settings service is not provided.
	ErrMissingSettingsService = errors.New("mcp: settings service is required")
)
