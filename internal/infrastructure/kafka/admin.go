package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

// TopicDepth returns the approximate number of messages held on a topic,
// summed across its partitions.
func TopicDepth(ctx context.Context, broker, topic string) (int64, error) {
	conn, err := kafka.DialContext(ctx, "tcp", broker)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	partitions, err := conn.ReadPartitions(topic)
	if err != nil {
		return 0, err
	}

	var depth int64
	for _, p := range partitions {
		leader, err := kafka.DialLeader(ctx, "tcp", broker, topic, p.ID)
		if err != nil {
			return 0, err
		}
		first, last, err := leader.ReadOffsets()
		leader.Close()
		if err != nil {
			return 0, err
		}
		depth += last - first
	}
	return depth, nil
}
