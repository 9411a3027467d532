// Copyright © 2025-2026 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package db

const (
	defaultSourceIdentifier = "EmbedCoreClient"

	// default host for mongo db if not configured
	defaultMongoHost = "localhost"

	// default port for mongo db if not configured
	defaultMongoPort = "27017"
)
