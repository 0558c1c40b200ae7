// Package service contains the processing pipeline that turns words
// into Anki cards. It coordinates the generator, image provider,
// AnkiConnect client and record store through small interfaces, so the
// flow can be tested without any external service.
package service
