package main

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"xtrading/src/models"
)

// Simulates the writes an execution engine performs against the model: build
// a bracket, submit, fill, and resolve the trade.
var lifecycleCmd = &cobra.Command{
	Use:   "go run src/cmd/order_lifecycle/main.go --quantity 100 --price 150.25",
	Short: "Walk a bracket order through its lifecycle and print the blotter",
	Run: func(cmd *cobra.Command, args []string) {
		quantity, err := cmd.Flags().GetFloat64("quantity")
		if err != nil {
			log.Fatalf("error getting quantity: %v", err)
		}

		price, err := cmd.Flags().GetFloat64("price")
		if err != nil {
			log.Fatalf("error getting price: %v", err)
		}

		if err := run(quantity, price); err != nil {
			log.Fatalf("Error: %v", err)
		}
	},
}

func run(quantity float64, price float64) error {
	parent, err := models.NewLimitOrder(models.Buy, quantity, price, models.WithTransmit(false))
	if err != nil {
		return fmt.Errorf("failed to create parent order: %w", err)
	}

	trailingDistance := 2.0
	child, err := models.NewTrailingStopMarket(models.Sell, quantity, &trailingDistance, nil)
	if err != nil {
		return fmt.Errorf("failed to create trailing stop: %w", err)
	}

	parent.AddChild(child)

	log.WithFields(log.Fields{
		"orderId":  parent.OrderID,
		"children": len(parent.Children),
	}).Info("bracket created")

	trade := models.NewTrade(parent)

	now := time.Now().UTC()
	trade.OrderStatus.Status = models.StatusSubmitted
	trade.OrderStatus.Remaining = quantity
	trade.LogStatus(now, models.StatusSubmitted, "order routed")

	log.Infof("trade active: %v", trade.IsActive())

	fillPrice := price - 0.25
	fill := models.NewFill(parent, models.Execution{
		OrderID: parent.OrderID,
		Time:    now,
		Shares:  quantity,
		Price:   fillPrice,
		Side:    models.Buy,
	}, models.CommissionReport{
		Commission: 1.0,
		Currency:   "USD",
	}, now)

	trade.AddFill(fill)
	trade.OrderStatus.Status = models.StatusFilled
	trade.OrderStatus.Filled = quantity
	trade.OrderStatus.Remaining = 0
	trade.OrderStatus.AvgFillPrice = fillPrice
	trade.OrderStatus.LastFillPrice = fillPrice
	trade.LogStatus(now, models.StatusFilled, "fully filled")

	// trailing state is engine-written once the parent fills
	extreme := fillPrice
	stop := fillPrice - trailingDistance
	child.ExtremePrice = &extreme
	child.StopPrice = &stop

	log.Infof("trade done: %v", trade.IsDone())

	fmt.Print(trade)

	return nil
}

func main() {
	lifecycleCmd.Flags().Float64("quantity", 100, "Order quantity")
	lifecycleCmd.Flags().Float64("price", 150.25, "Limit price for the parent order")

	lifecycleCmd.Execute()
}
