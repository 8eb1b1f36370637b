package demo

type Config struct {
	// AllowSimulatedFingerprint honors the X-Simulated-IP and
	// X-Simulated-User-Agent request headers as substitutes for the real
	// client signal. Client-supplied headers make hijacking detection
	// trivially bypassable, so this must stay off outside of demos.
	AllowSimulatedFingerprint bool `env:"DEMO_ALLOW_SIMULATED_FINGERPRINT" envDefault:"false"`

	// Seed user registered with the authenticator at startup.
	UserID   string `env:"DEMO_USER_ID" envDefault:"user123"`
	Username string `env:"DEMO_USERNAME" envDefault:"user"`
	Password string `env:"DEMO_PASSWORD" envDefault:"password"`
}
