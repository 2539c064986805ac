package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

func writeJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// confirm gates destructive operations behind an explicit yes.
func confirm(prompt string) (bool, error) {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	value, err := reader.ReadString('\n')
	if err != nil {
		return false, err
	}
	value = strings.ToLower(strings.TrimSpace(value))
	return value == "y" || value == "yes", nil
}

func parseDateInput(input string) (time.Time, error) {
	if input == "" {
		return time.Time{}, fmt.Errorf("date is required")
	}
	now := time.Now()
	switch strings.ToLower(input) {
	case "today":
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	case "tomorrow":
		t := now.AddDate(0, 0, 1)
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()), nil
	}
	parsed, err := time.Parse("2006-01-02", input)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", input)
	}
	return parsed, nil
}

// titleCase turns snake_case enum values into display labels
// ("enclosed_parking" -> "Enclosed Parking").
func titleCase(value string) string {
	words := strings.Fields(strings.ReplaceAll(value, "_", " "))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

func formatUSD(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

func formatAmenities(amenities []string) string {
	if len(amenities) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(amenities))
	for _, amenity := range amenities {
		labels = append(labels, strings.ReplaceAll(amenity, "_", " "))
	}
	return strings.Join(labels, ", ")
}

// showBanner prints the session's targeted banner, if any. Banner
// lookups are ancillary to whatever command is running, so failures
// are logged and swallowed.
func showBanner(ctx context.Context) {
	tracker, err := getTracker()
	if err != nil {
		return
	}
	banner, err := tracker.CurrentBanner(ctx)
	if err != nil {
		logrus.WithError(err).Debug("banner lookup failed")
		return
	}
	if banner == nil {
		return
	}
	fmt.Printf("%s: %s", banner.Title, banner.Message)
	if banner.CTAText != "" {
		fmt.Printf(" [%s]", banner.CTAText)
	}
	fmt.Printf("  (dismiss: storkeep banners dismiss %s)\n\n", banner.ID)
}

func formatAPITime(value string) string {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.Local().Format("2006-01-02 15:04")
	}
	if len(value) >= 10 {
		return value[:10]
	}
	return value
}
