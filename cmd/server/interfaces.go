package main

import (
	"context"

	"github.com/mayan-tools/mayan-comdirect-importer/pkg/worker"
)

type Reconciler interface {
	ProcessDocument(ctx context.Context, documentID string, interactive bool) error
	ImportPostbox(
		ctx context.Context,
		interactive bool,
		getAds bool,
		getArchived bool,
		getRead bool,
	) error
	Keepalive(ctx context.Context) error
}

type JobQueue interface {
	Enqueue(name string, job worker.Job) string
}
