package cmd

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storkeep-cli/api"
	"storkeep-cli/booking"
	"storkeep-cli/storage"
)

// nopEmitter stands in for the funnel tracker when the local session
// cannot be loaded; bookings still work, analytics are skipped.
type nopEmitter struct{}

func (nopEmitter) Track(string, map[string]any) {}

func bookCmd() *cobra.Command {
	var unitID string
	var name string
	var email string
	var phone string
	var payment string
	var period string
	var startDate string
	var moveInDate string
	var requests string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a storage unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if unitID == "" {
				return fmt.Errorf("--unit is required")
			}

			ctx := context.Background()
			unit, err := client.GetVirtualUnit(ctx, unitID)
			if err != nil {
				return err
			}

			var emitter booking.Emitter = nopEmitter{}
			if tracker, err := getTracker(); err == nil {
				emitter = tracker
			}

			flow := booking.NewFlow(client, emitter, func(b api.Booking) {
				recordHistory(b, unit)
			})
			flow.Open(unit)
			form := flow.Form()

			if name == "" {
				name = cfg.CustomerName
			}
			if email == "" {
				email = cfg.CustomerEmail
			}
			if phone == "" {
				phone = cfg.CustomerPhone
			}

			for _, field := range []struct {
				label string
				value *string
			}{
				{"Full name", &name},
				{"Email", &email},
				{"Phone", &phone},
			} {
				if *field.value != "" {
					continue
				}
				value, err := promptLine(field.label)
				if err != nil || value == "" {
					flow.Cancel()
					if err != nil {
						return err
					}
					return fmt.Errorf("%s is required", field.label)
				}
				*field.value = value
			}

			form.CustomerName = name
			form.CustomerEmail = email
			form.CustomerPhone = phone
			if payment != "" {
				form.PaymentOption = payment
			}
			if period == "" {
				period = cfg.DefaultPricingPeriod
			}
			if period != "" {
				form.PricingPeriod = period
			}
			if startDate != "" {
				date, err := parseDateInput(startDate)
				if err != nil {
					flow.Cancel()
					return err
				}
				form.StartDate = date.Format("2006-01-02")
			}
			if moveInDate != "" {
				date, err := parseDateInput(moveInDate)
				if err != nil {
					flow.Cancel()
					return err
				}
				form.MoveInDate = date.Format("2006-01-02")
			}
			form.SpecialRequests = requests

			booked, err := flow.Submit(ctx)
			if err != nil {
				flow.Cancel()
				return fmt.Errorf("booking failed: %w", err)
			}

			fmt.Printf("Booked: %s from %s\n", unit.DisplayName, form.StartDate)
			fmt.Printf("%s%s | %s\n", formatUSD(booked.TotalPrice), api.PeriodLabel(form.PricingPeriod), titleCase(form.PaymentOption))
			fmt.Printf("Booking ID: %s\n", booked.ID)

			// Availability may have changed; refresh the list.
			if units, err := client.GetVirtualUnits(ctx, url.Values{}); err == nil {
				fmt.Printf("%d units still available.\n", len(units))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "Virtual unit ID")
	cmd.Flags().StringVar(&name, "name", "", "Customer full name")
	cmd.Flags().StringVar(&email, "email", "", "Customer email")
	cmd.Flags().StringVar(&phone, "phone", "", "Customer phone")
	cmd.Flags().StringVar(&payment, "payment", "", "Payment option (pay_now_move_now, pay_now_move_later, pay_later_move_later)")
	cmd.Flags().StringVar(&period, "period", "", "Pricing period (daily, weekly, monthly)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&moveInDate, "move-in", "", "Move-in date (YYYY-MM-DD, today, tomorrow)")
	cmd.Flags().StringVar(&requests, "requests", "", "Special requests")
	return cmd
}

func recordHistory(booked api.Booking, unit api.VirtualUnit) {
	db, err := storage.OpenHistoryDB()
	if err != nil {
		logrus.WithError(err).Debug("history db unavailable")
		return
	}
	defer db.Close()

	record := storage.BookingRecord{
		ID:            booked.ID,
		UnitID:        unit.ID,
		UnitName:      unit.DisplayName,
		UnitType:      unit.UnitType,
		PricingPeriod: booked.PricingPeriod,
		PaymentOption: booked.PaymentOption,
		StartDate:     booked.StartDate,
		MoveInDate:    booked.MoveInDate,
		Price:         booked.TotalPrice,
		CreatedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if _, err := storage.AddRecordIfNotExists(db, record); err != nil {
		logrus.WithError(err).Debug("failed to record booking locally")
	}
}
