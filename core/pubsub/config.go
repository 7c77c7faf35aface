package pubsub

// Config holds publisher settings loaded from the environment.
//
// Example:
//
//	var cfg pubsub.Config
//	config.MustLoad(&cfg)
//	publisher := pubsub.NewFromConfig[string](cfg)
type Config struct {
	Persist bool `env:"PUBSUB_PERSIST" envDefault:"false"`
}

// NewFromConfig creates a Publisher using cfg. Options are applied after cfg,
// so they take precedence.
func NewFromConfig[M any](cfg Config, opts ...Option) *Publisher[M] {
	return New[M](append([]Option{WithPersist(cfg.Persist)}, opts...)...)
}
