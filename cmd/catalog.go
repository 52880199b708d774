package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
)

// backendClient builds the CLI's catalog client from the app config.
func backendClient() *catalog.Client {
	config.LoadAppConfig()
	cfg := config.AppConfig
	return catalog.NewClient(catalog.Config{
		BaseURL:   cfg.APIBaseURL,
		Timeout:   cfg.HTTPTimeout,
		UserAgent: "catalog-viewer-cli",
		Debug:     cfg.Debug,
	})
}

func exitf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
	os.Exit(1)
}

var departmentsListCmd = &cobra.Command{
	Use:   "departments:list",
	Short: "List catalog departments with product counts",
	Run: func(cmd *cobra.Command, args []string) {
		departments, err := backendClient().Departments(context.Background())
		if err != nil {
			exitf("Failed to fetch departments: %v", err)
		}

		fmt.Printf("%-6s %-30s %s\n", "ID", "NAME", "PRODUCTS")
		for _, d := range departments {
			fmt.Printf("%-6d %-30s %d\n", d.ID, d.Name, d.ProductCount)
		}
		fmt.Printf("\n%d departments\n", len(departments))
	},
}

var (
	productsPage  int
	productsLimit int
)

var productsListCmd = &cobra.Command{
	Use:   "products:list",
	Short: "List one page of the product catalog",
	Run: func(cmd *cobra.Command, args []string) {
		client := backendClient()
		limit := productsLimit
		if limit <= 0 {
			limit = config.AppConfig.PageSize
		}

		page, err := client.Products(context.Background(), config.ClampPage(productsPage), limit)
		if err != nil {
			exitf("Failed to fetch products: %v", err)
		}

		fmt.Printf("%-8s %-40s %-20s %s\n", "ID", "NAME", "BRAND", "PRICE")
		for _, p := range page.Products {
			fmt.Printf("%-8d %-40.40s %-20.20s $%.2f\n", p.ID, p.Name, p.Brand, p.RetailPrice)
		}
		pg := page.Pagination
		fmt.Printf("\nPage %d of %d (%d products)\n", pg.CurrentPage, pg.TotalPages, pg.TotalProducts)
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "products:get <id>",
	Short: "Show a single product",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil || id < 1 {
			exitf("Invalid product ID: %s", args[0])
		}

		p, err := backendClient().Product(context.Background(), id)
		if err != nil {
			exitf("Failed to fetch product %d: %v", id, err)
		}

		fmt.Printf(`ID:           %d
Name:         %s
Brand:        %s
Category:     %s
Department:   %s
SKU:          %s
Cost:         $%.2f
Retail price: $%.2f
`, p.ID, p.Name, p.Brand, p.Category, p.Department, p.SKU, p.Cost, p.RetailPrice)
	},
}

func init() {
	productsListCmd.Flags().IntVarP(&productsPage, "page", "p", 1, "Page number")
	productsListCmd.Flags().IntVarP(&productsLimit, "limit", "l", 0, "Page size (0 uses PAGE_SIZE)")

	rootCmd.AddCommand(departmentsListCmd)
	rootCmd.AddCommand(productsListCmd)
	rootCmd.AddCommand(productsGetCmd)
}
