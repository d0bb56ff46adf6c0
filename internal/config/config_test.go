package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrokers_Single(t *testing.T) {
	cfg := &Config{KafkaBrokers: "localhost:9092"}
	assert.Equal(t, []string{"localhost:9092"}, cfg.Brokers())
}

func TestBrokers_TrimsWhitespace(t *testing.T) {
	cfg := &Config{KafkaBrokers: "kafka-1:9092, kafka-2:9092 ,kafka-3:9092"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092", "kafka-3:9092"}, cfg.Brokers())
}

func TestBrokers_DropsEmptyEntries(t *testing.T) {
	cfg := &Config{KafkaBrokers: "kafka-1:9092,,kafka-2:9092,"}
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Brokers())
}
