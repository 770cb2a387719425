package config

import (
	"os"
	"strings"
)

// GetEnvOrDefault returns the environment variable value or a default.
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// Provider credentials. Each Get* returns "" when unconfigured; the
// fallback chains treat a missing key as "skip this provider" and warn
// once, never as a fatal error.

// TabstackAPIKey authorizes the structured-extraction API.
func TabstackAPIKey() string { return os.Getenv("TABSTACK_API_KEY") }

// TabstackEndpoint is the structured-extraction endpoint, overridable
// for staging environments.
func TabstackEndpoint() string {
	return GetEnvOrDefault("TABSTACK_ENDPOINT", "https://api.tabstack.ai/v1/extract/json")
}

// MinimaxAPIKey authorizes the primary TTS and music provider.
func MinimaxAPIKey() string { return os.Getenv("MINIMAX_API_KEY") }

// MinimaxGroupID is an optional MiniMax account scope header.
func MinimaxGroupID() string { return os.Getenv("MINIMAX_GROUP_ID") }

// OpenAIAPIKey authorizes the secondary TTS provider.
func OpenAIAPIKey() string { return os.Getenv("OPENAI_API_KEY") }

// ReplicateAPIKey authorizes the secondary music provider.
func ReplicateAPIKey() string { return os.Getenv("REPLICATE_API_TOKEN") }

// CohereAPIKey authorizes narration script generation.
func CohereAPIKey() string { return os.Getenv("COHERE_API_KEY") }

// PublicRoot is the directory under which persisted assets are laid out
// (public/images, public/audio). Defaults to ./public.
func PublicRoot() string {
	return GetEnvOrDefault("PUBLIC_ROOT", PublicDir)
}

// RendererURL is the optional external video renderer endpoint. Empty
// means props are assembled but no render call is made.
func RendererURL() string { return os.Getenv("RENDERER_URL") }

// KafkaBrokers returns the broker list for async job processing, or nil
// when the queue is not configured.
func KafkaBrokers() []string {
	v := os.Getenv("KAFKA_BROKERS")
	if v == "" {
		return nil
	}
	var brokers []string
	for _, b := range strings.Split(v, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

// KafkaJobsTopic is the topic carrying pipeline job submissions.
func KafkaJobsTopic() string {
	return GetEnvOrDefault("KAFKA_JOBS_TOPIC", "sitecast.jobs")
}

// KafkaGroupID is the consumer group for pipeline workers.
func KafkaGroupID() string {
	return GetEnvOrDefault("KAFKA_GROUP_ID", "sitecast-workers")
}

// S3Bucket enables asset mirroring when non-empty.
func S3Bucket() string { return os.Getenv("S3_BUCKET") }

// S3Prefix is the key prefix for mirrored assets.
func S3Prefix() string { return GetEnvOrDefault("S3_PREFIX", "sitecast/") }

// S3Region overrides the AWS default region chain when non-empty.
func S3Region() string { return os.Getenv("AWS_REGION") }
