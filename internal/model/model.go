package model

// Package model contains the domain entities shared across layers.
// Keep it free of business logic; behavior lives in the services.
