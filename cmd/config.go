package cmd

// Config carries every runtime setting the application reads from the
// environment.
type Config struct {
	HTTPPort         string
	DatabaseURL      string
	AmqpURL          string
	AmqpExchange     string
	OcrServiceURL    string
	ShippingFeesPath string
	LocalStorePath   string
	JWTSecret        string
}
