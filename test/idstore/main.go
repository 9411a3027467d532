package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/go-core-stack/embedcore/db"
	"github.com/go-core-stack/embedcore/diag"
	"github.com/go-core-stack/embedcore/errors"
	"github.com/go-core-stack/embedcore/resource"
	"github.com/go-core-stack/embedcore/timeout"
	"github.com/go-core-stack/embedcore/values"
)

func main() {
	db.SetSourceIdentifier("idstore-test")

	user, pass := values.GetMongoConfigDBCredentials()
	config := &db.MongoConfig{
		Uri:      values.GetMongoConfigDBUri(),
		Username: user,
		Password: pass,
	}

	client, err := db.NewMongoClient(config)
	if err != nil {
		log.Fatalf("failed to create mongo client: %s", err)
	}

	// wait for the store to come up, backing off between attempts
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	var healthErr error
	err = timeout.Retry(ctx, timeout.NewDynamicFromEnv(),
		func() error {
			healthErr = client.HealthCheck(ctx)
			return nil
		},
		func() bool {
			return healthErr == nil
		})
	if err != nil {
		log.Fatalf("mongo store not healthy: %s, last error %v", err, healthErr)
	}

	col := client.GetDataStore("test").GetCollection("id-allocator-state")
	tbl, err := resource.NewStateTable(col, uuid.Nil)
	if err != nil {
		log.Fatalf("failed to create state table: %s", err)
	}

	sink := diag.NewLimitedSink(diag.NewLogSink(nil), time.Second, 5)
	ids, err := tbl.Load(ctx, "sessions", resource.WithDiagnostics(sink))
	if errors.IsNotFound(err) {
		// claim the name, another instance may have raced us to it
		ids = resource.NewIdAllocator(100, resource.WithDiagnostics(sink))
		if err := tbl.Create(ctx, "sessions", ids); err != nil {
			log.Fatalf("failed to claim allocator state: %s", err)
		}
	} else if err != nil {
		log.Fatalf("failed to load allocator state: %s", err)
	}

	for i := 0; i < 5; i++ {
		id, err := ids.Allocate()
		if err != nil {
			log.Fatalf("failed to allocate id: %s", err)
		}
		log.Printf("allocated id %d", id)
	}

	if err := tbl.Save(ctx, "sessions", ids); err != nil {
		log.Fatalf("failed to save allocator state: %s", err)
	}
	count, err := tbl.Count(ctx)
	if err != nil {
		log.Fatalf("failed to count allocator states: %s", err)
	}
	log.Printf("%d allocator states stored", count)
	log.Printf("saved state as owner %s, %d ids in use, %d bytes", tbl.Owner(), ids.InUse(), ids.Capacity())
}
