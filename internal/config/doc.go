// Package config handles configuration loading and validation from
// environment variables and an optional config.yaml. It provides
// type-safe access to the settings each component needs (AnkiConnect
// endpoint, generation model, image quality, parser vocabulary) while
// keeping configuration details out of the business logic.
package config