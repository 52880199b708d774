package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/keshavk21/Think41/catalog"
	"github.com/keshavk21/Think41/config"
	"github.com/keshavk21/Think41/view"
)

var browseStartURL string

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Interactive catalog session in the terminal. Navigation runs through the
same controller and history as the web viewer, so back/forward and URL
handling behave identically.`,
	Run: func(cmd *cobra.Command, args []string) {
		runBrowse(browseStartURL)
	},
}

func init() {
	browseCmd.Flags().StringVarP(&browseStartURL, "url", "u", "/departments", "Start URL")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(startURL string) {
	config.LoadAppConfig()
	ctx := context.Background()

	history := view.NewMemoryHistory(startURL)
	controller := view.NewController(backendClient(), textRenderer{}, terminalScreen{}, history, view.Config{
		PageSize: config.AppConfig.PageSize,
	})
	controller.Start(ctx, startURL)

	fmt.Println("Commands: departments | open <id> | products [page] | next | prev | back | forward | url | quit")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "departments", "d":
			controller.ShowDepartments(ctx)
		case "open", "o":
			if len(fields) < 2 {
				fmt.Println("usage: open <department-id>")
				continue
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil || id < 1 {
				fmt.Println("invalid department ID:", fields[1])
				continue
			}
			controller.OpenDepartment(ctx, id)
		case "products", "p":
			page := 1
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil {
					page = n
				}
			}
			controller.OpenProducts(ctx, page)
		case "next", "n":
			if s := controller.State(); s.Kind == view.KindProductList {
				controller.OpenProducts(ctx, s.Page+1)
			} else {
				controller.OpenProducts(ctx, 1)
			}
		case "prev":
			s := controller.State()
			if s.Kind != view.KindProductList || s.Page <= 1 {
				fmt.Println("already on the first page")
				continue
			}
			controller.OpenProducts(ctx, s.Page-1)
		case "back", "b":
			if !history.Back() {
				fmt.Println("history: nothing to go back to")
			}
		case "forward", "f":
			if !history.Forward() {
				fmt.Println("history: nothing ahead")
			}
		case "url":
			fmt.Println(controller.State().URL())
		case "quit", "q", "exit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

// textRenderer renders views as plain text for the terminal.
type textRenderer struct{}

func (textRenderer) DepartmentList(departments []catalog.Department) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Departments (%d)\n", len(departments))
	if len(departments) == 0 {
		b.WriteString("  No departments found\n")
		return b.String(), nil
	}
	for _, d := range departments {
		fmt.Fprintf(&b, "  [%d] %s (%d products)\n", d.ID, d.Name, d.ProductCount)
	}
	return b.String(), nil
}

func (textRenderer) DepartmentDetail(department catalog.Department, products []catalog.Product) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d products)\n", department.Name, department.ProductCount)
	if len(products) == 0 {
		b.WriteString("  No products found\n")
		return b.String(), nil
	}
	for _, p := range products {
		fmt.Fprintf(&b, "  [%d] %s $%.2f\n", p.ID, p.Name, p.RetailPrice)
	}
	return b.String(), nil
}

func (textRenderer) ProductList(page catalog.ProductPage) (string, error) {
	var b strings.Builder
	pg := page.Pagination
	fmt.Fprintf(&b, "Products, page %d of %d (%d total)\n", pg.CurrentPage, pg.TotalPages, pg.TotalProducts)
	if len(page.Products) == 0 {
		b.WriteString("  No products found\n")
		return b.String(), nil
	}
	for _, p := range page.Products {
		fmt.Fprintf(&b, "  [%d] %s $%.2f\n", p.ID, p.Name, p.RetailPrice)
	}
	return b.String(), nil
}

// terminalScreen prints each surface swap to stdout.
type terminalScreen struct{}

func (terminalScreen) ShowLoading()              { fmt.Println("Loading...") }
func (terminalScreen) ShowError(message string)  { fmt.Println("ERROR:", message) }
func (terminalScreen) ShowContent(markup string) { fmt.Print(markup) }
