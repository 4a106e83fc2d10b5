package main

import (
	"fmt"
	"strings"

	"github.com/cinematicwebworks/seokit/internal/schema"
	"github.com/spf13/cobra"
)

// NewSchemaCmd creates the schema command and its generators.
func NewSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print schema.org JSON-LD blocks for pasting into pages",
		Long: `Schema prints ready-to-paste <script type="application/ld+json"> blocks.

Business facts (name, address, telephone, sister sites) come from the
built-in defaults, overridden by the business section of .seokit.yaml.

Examples:
  seokit schema service "Web Development" "Professional web development" \
    https://cinematicwebworks.com/web-development-bahrain.html "Web Development"
  seokit schema faq -q "How much does a website cost?" -a "Prices start from BD 300."
  seokit schema breadcrumb "Web Design" https://cinematicwebworks.com/web-design-bahrain.html
  seokit schema localbusiness`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newSchemaServiceCmd())
	cmd.AddCommand(newSchemaFAQCmd())
	cmd.AddCommand(newSchemaBreadcrumbCmd())
	cmd.AddCommand(newSchemaArticleCmd())
	cmd.AddCommand(newSchemaWebPageCmd())
	cmd.AddCommand(newSchemaHowToCmd())
	cmd.AddCommand(newSchemaRatingCmd())
	cmd.AddCommand(newSchemaLocalBusinessCmd())

	return cmd
}

// printSchema loads the business facts, builds one object and prints it
// as a script block.
func printSchema(cmd *cobra.Command, build func(*schema.Generator) (schema.Object, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	setupLogger(cfg.Verbose)

	obj, err := build(schema.NewGenerator(business(cfg)))
	if err != nil {
		return err
	}
	block, err := schema.Wrap(obj)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), block)
	return nil
}

// argOr returns args[i], or def when there are fewer arguments.
func argOr(args []string, i int, def string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}
	return def
}

func newSchemaServiceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "service [name] [description] [url] [serviceType]",
		Short: "Service offered by the business",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			area, err := cmd.Flags().GetString("area")
			if err != nil {
				return err
			}
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.Service(schema.ServiceInput{
					Name:        argOr(args, 0, "Web Development"),
					Description: argOr(args, 1, "Professional web development services"),
					URL:         argOr(args, 2, g.Business().URL+"/web-development-bahrain.html"),
					ServiceType: argOr(args, 3, "Web Development"),
					AreaServed:  area,
				})
			})
		},
	}
	cmd.Flags().String("area", schema.DefaultAreaServed, "Area served")
	return cmd
}

func newSchemaFAQCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "faq",
		Short: "FAQ page from question/answer pairs",
		Long: `Faq builds an FAQPage. Pass --question and --answer once per entry,
in matching order. Without any pairs an example entry is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			questions, err := cmd.Flags().GetStringArray("question")
			if err != nil {
				return err
			}
			answers, err := cmd.Flags().GetStringArray("answer")
			if err != nil {
				return err
			}
			if len(questions) != len(answers) {
				return fmt.Errorf("got %d questions but %d answers", len(questions), len(answers))
			}
			items := make([]schema.FAQItem, len(questions))
			for i := range questions {
				items[i] = schema.FAQItem{Question: questions[i], Answer: answers[i]}
			}
			if len(items) == 0 {
				items = []schema.FAQItem{{
					Question: "How much does a website cost?",
					Answer:   "Prices start from BD 300.",
				}}
			}
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.FAQ(items)
			})
		},
	}
	cmd.Flags().StringArrayP("question", "q", nil, "Question text (repeatable)")
	cmd.Flags().StringArrayP("answer", "a", nil, "Answer text (repeatable)")
	return cmd
}

func newSchemaBreadcrumbCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breadcrumb [page-name] [page-url]",
		Short: "Home > Services > page breadcrumb trail",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				base := strings.TrimSuffix(g.Business().URL, "/")
				return g.Breadcrumb([]schema.BreadcrumbItem{
					{Name: "Home", URL: base + "/"},
					{Name: "Services", URL: base + "/services/"},
					{Name: argOr(args, 0, "Service"), URL: argOr(args, 1, base+"/service.html")},
				})
			})
		},
	}
}

func newSchemaArticleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "article",
		Short: "Blog article published by the business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in schema.ArticleInput
			for name, dst := range map[string]*string{
				"headline":    &in.Headline,
				"description": &in.Description,
				"url":         &in.URL,
				"image":       &in.Image,
				"published":   &in.DatePublished,
				"modified":    &in.DateModified,
				"author":      &in.Author,
			} {
				v, err := cmd.Flags().GetString(name)
				if err != nil {
					return err
				}
				*dst = v
			}
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.Article(in)
			})
		},
	}
	cmd.Flags().String("headline", "", "Article headline (required)")
	cmd.Flags().String("description", "", "Article description (required)")
	cmd.Flags().String("url", "", "Article URL (required)")
	cmd.Flags().String("image", "", "Article image URL (required)")
	cmd.Flags().String("published", "", "Publication date, YYYY-MM-DD (required)")
	cmd.Flags().String("modified", "", "Modification date (default: published)")
	cmd.Flags().String("author", "", "Author name (default: business name)")
	return cmd
}

func newSchemaWebPageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "webpage <name> <description> <url>",
		Short: "Generic page on the business website",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.WebPage(schema.WebPageInput{Name: args[0], Description: args[1], URL: args[2]})
			})
		},
	}
}

func newSchemaHowToCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "howto <name> <description>",
		Short: "Step-by-step process",
		Long: `Howto builds a HowTo. Pass --step once per step, in order. A step may
be "Name: text" or just text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := cmd.Flags().GetStringArray("step")
			if err != nil {
				return err
			}
			steps := make([]schema.HowToStep, len(raw))
			for i, s := range raw {
				steps[i] = parseStep(s)
			}
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.HowTo(schema.HowToInput{Name: args[0], Description: args[1], Steps: steps})
			})
		},
	}
	cmd.Flags().StringArrayP("step", "s", nil, `Step as "Name: text" (repeatable)`)
	return cmd
}

// parseStep splits "Name: text" into a step. Text without a colon has no name.
func parseStep(s string) schema.HowToStep {
	name, text, ok := strings.Cut(s, ":")
	if !ok {
		return schema.HowToStep{Text: strings.TrimSpace(s)}
	}
	return schema.HowToStep{Name: strings.TrimSpace(name), Text: strings.TrimSpace(text)}
}

func newSchemaRatingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rating",
		Short: "Aggregate review rating for the business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			value, err := cmd.Flags().GetFloat64("value")
			if err != nil {
				return err
			}
			count, err := cmd.Flags().GetInt("count")
			if err != nil {
				return err
			}
			item, err := cmd.Flags().GetString("item")
			if err != nil {
				return err
			}
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				if item == "" {
					item = g.Business().Name
				}
				return g.AggregateRating(schema.RatingInput{ItemReviewed: item, RatingValue: value, ReviewCount: count})
			})
		},
	}
	cmd.Flags().Float64("value", schema.BestRating, "Average rating, 1-5")
	cmd.Flags().Int("count", 0, "Number of reviews")
	cmd.Flags().String("item", "", "Reviewed item (default: business name)")
	return cmd
}

func newSchemaLocalBusinessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "localbusiness",
		Short: "Organization node for the business",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printSchema(cmd, func(g *schema.Generator) (schema.Object, error) {
				return g.LocalBusiness(nil)
			})
		},
	}
}
