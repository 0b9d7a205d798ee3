package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Mouaadag/inseeSearchEngine/pkg/keywords"
)

// KeywordsCommand creates the keywords command
func KeywordsCommand() *cli.Command {
	return &cli.Command{
		Name:  "keywords",
		Usage: "List popular search keywords by statistical category",
		Action: func(ctx context.Context, c *cli.Command) error {
			printKeywords()
			return nil
		},
	}
}

func printKeywords() {
	fmt.Println(titleStyle.Render("Popular keywords"))

	titler := cases.Title(language.English)
	for _, cat := range keywords.Popular() {
		fmt.Println()
		fmt.Println(headerStyle.Render(titler.String(cat.Name)))
		fmt.Printf("  fr: %s\n", strings.Join(cat.French, ", "))
		fmt.Printf("  en: %s\n", strings.Join(cat.English, ", "))
	}
}
