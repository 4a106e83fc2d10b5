package schema

import (
	"fmt"
	"strings"
)

// Context is the JSON-LD vocabulary every object declares.
const Context = "https://schema.org"

// DefaultAreaServed is used by Service when no area is given.
const DefaultAreaServed = "Bahrain"

// Object is a JSON-LD node. Keys are schema.org property names.
type Object = map[string]any

// ServiceInput describes a service offered by the business.
type ServiceInput struct {
	Name        string
	Description string
	URL         string
	ServiceType string

	// AreaServed defaults to DefaultAreaServed.
	AreaServed string
}

// FAQItem is one question and its answer.
type FAQItem struct {
	Question string
	Answer   string
}

// BreadcrumbItem is one step of a breadcrumb trail.
type BreadcrumbItem struct {
	Name string
	URL  string
}

// ArticleInput describes a blog post.
type ArticleInput struct {
	Headline      string
	Description   string
	URL           string
	Image         string
	DatePublished string

	// DateModified defaults to DatePublished.
	DateModified string

	// Author defaults to the business name.
	Author string
}

// WebPageInput describes a generic page.
type WebPageInput struct {
	Name        string
	Description string
	URL         string
}

// RatingInput describes an aggregate review rating.
type RatingInput struct {
	ItemReviewed string
	RatingValue  float64
	ReviewCount  int
}

// HowToStep is one step of a HowTo.
type HowToStep struct {
	Name string
	Text string
}

// HowToInput describes a tutorial or process page.
type HowToInput struct {
	Name        string
	Description string
	Steps       []HowToStep
}

// Rating bounds used by AggregateRating.
const (
	BestRating  = 5
	WorstRating = 1
)

// Generator builds objects from a fixed set of business facts.
type Generator struct {
	business Business
}

// NewGenerator creates a Generator for b.
func NewGenerator(b Business) *Generator {
	return &Generator{business: b}
}

// Business returns the facts the generator uses.
func (g *Generator) Business() Business {
	return g.business
}

var defaultGenerator = NewGenerator(DefaultBusiness())

// LocalBusiness returns the organization node. Keys in overrides replace
// or extend the generated ones.
func (g *Generator) LocalBusiness(overrides Object) (Object, error) {
	b := g.business
	if b.Name == "" {
		return nil, missing("LocalBusiness", "name")
	}
	if b.URL == "" {
		return nil, missing("LocalBusiness", "url")
	}

	obj := Object{
		"@context":  Context,
		"@type":     "LocalBusiness",
		"@id":       strings.TrimSuffix(b.URL, "/") + "/#organization",
		"name":      b.Name,
		"url":       b.URL,
		"logo":      b.Logo,
		"telephone": b.Telephone,
		"email":     b.Email,
		"address": Object{
			"@type":           "PostalAddress",
			"streetAddress":   b.Address.StreetAddress,
			"addressLocality": b.Address.AddressLocality,
			"addressCountry":  b.Address.AddressCountry,
		},
		"sameAs":     stringsOrEmpty(b.SameAs),
		"priceRange": b.PriceRange,
	}
	for k, v := range overrides {
		obj[k] = v
	}
	return obj, nil
}

// Service returns a Service node provided by the business.
func (g *Generator) Service(in ServiceInput) (Object, error) {
	if err := requireFields("Service",
		field{"name", in.Name},
		field{"description", in.Description},
		field{"url", in.URL},
		field{"serviceType", in.ServiceType},
	); err != nil {
		return nil, err
	}

	area := in.AreaServed
	if area == "" {
		area = DefaultAreaServed
	}

	b := g.business
	return Object{
		"@context":    Context,
		"@type":       "Service",
		"name":        in.Name,
		"description": in.Description,
		"url":         in.URL,
		"serviceType": in.ServiceType,
		"provider": Object{
			"@type":     "LocalBusiness",
			"name":      b.Name,
			"telephone": b.Telephone,
			"email":     b.Email,
			"address": Object{
				"@type":           "PostalAddress",
				"addressLocality": b.Address.AddressLocality,
				"addressCountry":  b.Address.AddressCountry,
			},
		},
		"areaServed": Object{
			"@type": "Country",
			"name":  area,
		},
	}, nil
}

// FAQ returns an FAQPage. An empty list yields an empty mainEntity.
func (g *Generator) FAQ(items []FAQItem) (Object, error) {
	entities := make([]any, 0, len(items))
	for i, it := range items {
		if err := requireFields("FAQPage",
			field{fmt.Sprintf("mainEntity[%d].question", i), it.Question},
			field{fmt.Sprintf("mainEntity[%d].answer", i), it.Answer},
		); err != nil {
			return nil, err
		}
		entities = append(entities, Object{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": Object{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return Object{
		"@context":   Context,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}, nil
}

// Breadcrumb returns a BreadcrumbList with 1-based positions in input order.
func (g *Generator) Breadcrumb(items []BreadcrumbItem) (Object, error) {
	elements := make([]any, 0, len(items))
	for i, it := range items {
		if err := requireFields("BreadcrumbList",
			field{fmt.Sprintf("itemListElement[%d].name", i), it.Name},
			field{fmt.Sprintf("itemListElement[%d].item", i), it.URL},
		); err != nil {
			return nil, err
		}
		elements = append(elements, Object{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.URL,
		})
	}
	return Object{
		"@context":        Context,
		"@type":           "BreadcrumbList",
		"itemListElement": elements,
	}, nil
}

// Article returns an Article published by the business.
func (g *Generator) Article(in ArticleInput) (Object, error) {
	if err := requireFields("Article",
		field{"headline", in.Headline},
		field{"description", in.Description},
		field{"url", in.URL},
		field{"image", in.Image},
		field{"datePublished", in.DatePublished},
	); err != nil {
		return nil, err
	}

	modified := in.DateModified
	if modified == "" {
		modified = in.DatePublished
	}
	b := g.business
	author := in.Author
	if author == "" {
		author = b.Name
	}

	return Object{
		"@context":      Context,
		"@type":         "Article",
		"headline":      in.Headline,
		"description":   in.Description,
		"url":           in.URL,
		"image":         in.Image,
		"datePublished": in.DatePublished,
		"dateModified":  modified,
		"author": Object{
			"@type": "Organization",
			"name":  author,
			"url":   b.URL,
		},
		"publisher": Object{
			"@type": "Organization",
			"name":  b.Name,
			"url":   b.URL,
			"logo": Object{
				"@type": "ImageObject",
				"url":   b.Logo,
			},
		},
	}, nil
}

// WebPage returns a WebPage that is part of the business website.
func (g *Generator) WebPage(in WebPageInput) (Object, error) {
	if err := requireFields("WebPage",
		field{"name", in.Name},
		field{"description", in.Description},
		field{"url", in.URL},
	); err != nil {
		return nil, err
	}
	b := g.business
	return Object{
		"@context":    Context,
		"@type":       "WebPage",
		"name":        in.Name,
		"description": in.Description,
		"url":         in.URL,
		"isPartOf": Object{
			"@type": "WebSite",
			"name":  b.Name,
			"url":   b.URL,
		},
	}, nil
}

// AggregateRating returns a rating on a 1 to 5 scale.
func (g *Generator) AggregateRating(in RatingInput) (Object, error) {
	if err := requireFields("AggregateRating", field{"itemReviewed", in.ItemReviewed}); err != nil {
		return nil, err
	}
	if in.RatingValue < WorstRating || in.RatingValue > BestRating {
		return nil, &InvalidFieldError{
			Schema: "AggregateRating",
			Field:  "ratingValue",
			Reason: fmt.Sprintf("must be between %d and %d", WorstRating, BestRating),
		}
	}
	return Object{
		"@context": Context,
		"@type":    "AggregateRating",
		"itemReviewed": Object{
			"@type": "LocalBusiness",
			"name":  in.ItemReviewed,
		},
		"ratingValue": in.RatingValue,
		"bestRating":  BestRating,
		"worstRating": WorstRating,
		"reviewCount": in.ReviewCount,
	}, nil
}

// HowTo returns a HowTo with 1-based step positions in input order.
func (g *Generator) HowTo(in HowToInput) (Object, error) {
	if err := requireFields("HowTo",
		field{"name", in.Name},
		field{"description", in.Description},
	); err != nil {
		return nil, err
	}
	steps := make([]any, 0, len(in.Steps))
	for i, s := range in.Steps {
		if err := requireFields("HowTo", field{fmt.Sprintf("step[%d].text", i), s.Text}); err != nil {
			return nil, err
		}
		steps = append(steps, Object{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Name,
			"text":     s.Text,
		})
	}
	return Object{
		"@context":    Context,
		"@type":       "HowTo",
		"name":        in.Name,
		"description": in.Description,
		"step":        steps,
	}, nil
}

// LocalBusiness calls Generator.LocalBusiness with the default facts.
func LocalBusiness(overrides Object) (Object, error) {
	return defaultGenerator.LocalBusiness(overrides)
}

// Service calls Generator.Service with the default facts.
func Service(in ServiceInput) (Object, error) { return defaultGenerator.Service(in) }

// FAQ calls Generator.FAQ with the default facts.
func FAQ(items []FAQItem) (Object, error) { return defaultGenerator.FAQ(items) }

// Breadcrumb calls Generator.Breadcrumb with the default facts.
func Breadcrumb(items []BreadcrumbItem) (Object, error) {
	return defaultGenerator.Breadcrumb(items)
}

// Article calls Generator.Article with the default facts.
func Article(in ArticleInput) (Object, error) { return defaultGenerator.Article(in) }

// WebPage calls Generator.WebPage with the default facts.
func WebPage(in WebPageInput) (Object, error) { return defaultGenerator.WebPage(in) }

// AggregateRating calls Generator.AggregateRating with the default facts.
func AggregateRating(in RatingInput) (Object, error) {
	return defaultGenerator.AggregateRating(in)
}

// HowTo calls Generator.HowTo with the default facts.
func HowTo(in HowToInput) (Object, error) { return defaultGenerator.HowTo(in) }

type field struct {
	name  string
	value string
}

func requireFields(schema string, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return missing(schema, f.name)
		}
	}
	return nil
}

func stringsOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
