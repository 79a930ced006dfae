package main

import (
	"github.com/tuannh982/orderedset/collections"

	log "github.com/sirupsen/logrus"
)

func main() {
	logger := log.WithFields(log.Fields{"demo": "orderedset"})
	logger.Logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.Level = log.InfoLevel

	// deduplicate a release rollout plan while keeping submission order
	rollout := collections.NewMutableOrderedSet(collections.Identity[string],
		"eu-west", "us-east", "eu-west", "ap-south", "us-east", "us-west")
	logger.Infof("rollout order after dedup: %v", rollout.Entries())

	// regions already completed are dropped, order of the rest untouched
	done := collections.NewHashSet(collections.Identity[string], "us-east")
	rollout.MinusSet(done)
	logger.Infof("pending regions: %v", rollout.Entries())

	// late additions append in their own order, duplicates skipped
	rollout.Union(collections.NewOrderedSet(collections.Identity[string], "sa-east", "eu-west"))
	logger.Infof("after late additions: %v", rollout.Entries())

	// newest region jumps the queue
	rollout.Move(collections.NewIndexSet(rollout.Size()-1), 0)
	logger.Infof("after prioritization: %v", rollout.Entries())

	data, err := collections.MarshalKeyed[string](rollout)
	if err != nil {
		logger.Fatalf("marshal rollout: %v", err)
	}
	restored, err := collections.UnmarshalKeyed(data, collections.Identity[string])
	if err != nil {
		logger.Fatalf("unmarshal rollout: %v", err)
	}
	logger.Infof("restored %d regions, identical=%v", restored.Size(), restored.Equal(rollout))
}
