package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

// dateOrToday resolves an optional --date flag value.
func dateOrToday(date string) (string, error) {
	if date == "" {
		return time.Now().UTC().Format("2006-01-02"), nil
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD", date)
	}
	return date, nil
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "output as JSON")
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}
