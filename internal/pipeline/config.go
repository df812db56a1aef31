package pipeline

import "time"

// Config holds pipeline tuning knobs. Embed this in your app config
// structure for automatic environment variable parsing:
//
//	type AppConfig struct {
//		Pipeline pipeline.Config
//		// other fields...
//	}
type Config struct {
	// TestEmail receives test sends. Required for the test trigger.
	TestEmail string `env:"PIPELINE_TEST_EMAIL"`
	// TestName is the display name used for test sends.
	TestName string `env:"PIPELINE_TEST_NAME" envDefault:"Newsroom Test"`
	// FallbackEmail receives the full send when the audience resolves
	// to nobody, so a send is never silently dropped.
	FallbackEmail string `env:"PIPELINE_FALLBACK_EMAIL"`
	// FallbackName is the display name for the fallback recipient.
	FallbackName string `env:"PIPELINE_FALLBACK_NAME" envDefault:"Newsroom"`
	// SendDelay is the pause between consecutive deliveries.
	SendDelay time.Duration `env:"PIPELINE_SEND_DELAY" envDefault:"100ms"`
	// SkipSections lists section headings at which rendering stops;
	// the heading and everything after it are dropped from the email.
	SkipSections []string `env:"PIPELINE_SKIP_SECTIONS" envDefault:"Collateral Checklist,Review Questions"`
	// Template is the email template name within the template FS.
	Template string `env:"PIPELINE_TEMPLATE" envDefault:"newsletter.md"`
	// RehostPrefix is the object key prefix for rehosted images.
	RehostPrefix string `env:"PIPELINE_REHOST_PREFIX" envDefault:"newsletters"`
}
