// Package mcp provides an MCP (Model Context Protocol) server
// adapter for Inkwell. It exposes the document conversion tools to
// AI assistants over stdio or streamable HTTP.
package mcp

import "errors"

// ErrMissingConversionService is returned when the conversion service is not provided.
var ErrMissingConversionService = errors.New("mcp: conversion service is required")

// ErrMissingCapabilityService is returned when the capability service is not provided.
var ErrMissingCapabilityService = errors.New("mcp: capability service is required")
