package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retainops/churnview/internal/fetch"
	"github.com/retainops/churnview/internal/format"
	"github.com/retainops/churnview/internal/predict"
	"github.com/retainops/churnview/internal/render"
)

// Numeric flags stay strings on purpose: invalid numeric text coerces to 0
// instead of rejecting the submission, matching the form semantics.
var (
	predictCustomerID     string
	predictTenure         string
	predictMonthlyCharges string
	predictTotalCharges   string
	predictContract       string
	predictPaymentMethod  string
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Score a single customer and show the recommended action",
	RunE: func(cmd *cobra.Command, args []string) error {
		fm, err := format.New(cfg.Render.Locale)
		if err != nil {
			return err
		}

		client := fetch.NewClient(cfg.API.BaseURL(),
			fetch.WithTimeout(time.Duration(cfg.API.TimeoutSecs)*time.Second),
		)
		submitter := predict.NewSubmitter(client, render.NewTerm(os.Stdout), fm)

		result, err := submitter.Submit(cmd.Context(), predict.FormInput{
			CustomerID:     predictCustomerID,
			Tenure:         predictTenure,
			MonthlyCharges: predictMonthlyCharges,
			TotalCharges:   predictTotalCharges,
			Contract:       predictContract,
			PaymentMethod:  predictPaymentMethod,
		})
		if err != nil {
			return err
		}

		zap.L().Info("prediction scored",
			zap.String("customer_id", predictCustomerID),
			zap.Float64("churn_probability", result.ChurnProbability),
			zap.String("risk_bucket", string(result.RiskBucket)),
		)
		return nil
	},
}

func init() {
	predictCmd.Flags().StringVar(&predictCustomerID, "customer-id", "", "customer identifier (required)")
	predictCmd.Flags().StringVar(&predictTenure, "tenure", "0", "tenure in months")
	predictCmd.Flags().StringVar(&predictMonthlyCharges, "monthly-charges", "0", "monthly charges")
	predictCmd.Flags().StringVar(&predictTotalCharges, "total-charges", "0", "total charges")
	predictCmd.Flags().StringVar(&predictContract, "contract", "", "contract type")
	predictCmd.Flags().StringVar(&predictPaymentMethod, "payment-method", "", "payment method")
	_ = predictCmd.MarkFlagRequired("customer-id")
	rootCmd.AddCommand(predictCmd)
}
