package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func Load() error {
	err := godotenv.Load()
	if err != nil {
		return err
	}

	var baseURLFlag string
	flag.StringVar(&baseURLFlag, "api", "", "API base URL (overrides PANEL_API_BASE_URL environment variable)")
	flag.Parse()

	if baseURLFlag != "" {
		err := os.Setenv("PANEL_API_BASE_URL", baseURLFlag)
		if err != nil {
			return fmt.Errorf("failed to set PANEL_API_BASE_URL environment variable: %w", err)
		}
	}
	return nil
}
