package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/culinate/dishfinder/core"
)

const (
	defaultCuisine    = "Asian"
	defaultPriceRange = "€€"
)

// Dish is a single parsed menu item, before it becomes a catalog record.
type Dish struct {
	Name        string
	Description string
	Price       float64
	Category    string
}

// Restaurant is a parsed restaurant section with its metadata and dishes.
type Restaurant struct {
	Name       string
	Rating     int
	Cuisine    string
	PriceRange string
	Address    string
	Phone      string
	Website    string
	Dishes     []Dish
}

// Guide is a parsed restaurant guide. Restaurants appear in document order.
type Guide struct {
	Restaurants []*Restaurant
}

var (
	sectionRe  = regexp.MustCompile(`^##\s+\d+\.\s*(.+)$`)
	metadataRe = regexp.MustCompile(`^\*\*(Cuisine|Price Range|Address|Phone|Website):\*\*\s*(.+)$`)
	categoryRe = regexp.MustCompile(`^\*\*([^*:(]+?)(?:\s*\([^)]*\))?\s*:\*\*\s*$`)

	// Menu item formats, tried in order:
	//   - Name - 14€    - Name (desc) - €14.50    - Name – 12,50
	//   - Name €14
	itemRes = []*regexp.Regexp{
		regexp.MustCompile(`^[-•]\s+(.+?)\s*[-–]\s*€?(\d+(?:[.,]\d+)?)\s*€?\s*$`),
		regexp.MustCompile(`^[-•]\s+(.+?)\s+€(\d+(?:[.,]\d+)?)\s*$`),
	}

	descriptionRe = regexp.MustCompile(`^(.*?)\s*\(([^)]*)\)$`)
	whitespaceRe  = regexp.MustCompile(`\s+`)
)

// noiseWords are line fragments the item patterns sometimes pick up from
// surrounding prose; they are never real dishes.
var noiseWords = map[string]bool{
	"menu":  true,
	"about": true,
	"hours": true,
	"note":  true,
}

// ParseGuide parses a markdown restaurant guide. It returns an error when
// no restaurant section could be found; individual unparseable lines are
// skipped silently.
func ParseGuide(r io.Reader) (*Guide, error) {
	guide := &Guide{}
	var current *Restaurant

	flush := func() {
		if current == nil {
			return
		}
		if current.Cuisine == "" {
			current.Cuisine = defaultCuisine
		}
		if current.PriceRange == "" {
			current.PriceRange = defaultPriceRange
		}
		guide.Restaurants = append(guide.Restaurants, current)
		current = nil
	}

	category := ""
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if m := sectionRe.FindStringSubmatch(line); m != nil {
			flush()
			current = parseSectionHeader(m[1])
			category = ""
			continue
		}
		if current == nil {
			// Intro prose before the first section
			continue
		}

		if m := metadataRe.FindStringSubmatch(line); m != nil {
			value := strings.TrimSpace(m[2])
			switch m[1] {
			case "Cuisine":
				current.Cuisine = value
			case "Price Range":
				current.PriceRange = value
			case "Address":
				current.Address = value
			case "Phone":
				current.Phone = value
			case "Website":
				current.Website = value
			}
			continue
		}

		if m := categoryRe.FindStringSubmatch(line); m != nil {
			category = strings.TrimSpace(m[1])
			continue
		}

		if dish, ok := parseItemLine(line); ok {
			dish.Category = category
			current.Dishes = append(current.Dishes, dish)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading guide: %w", err)
	}
	flush()

	if len(guide.Restaurants) == 0 {
		return nil, ErrNoRestaurants
	}
	return guide, nil
}

// LoadGuideFile parses a markdown restaurant guide from a file.
func LoadGuideFile(path string) (*Guide, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening guide: %w", err)
	}
	defer f.Close()
	return ParseGuide(f)
}

// Records flattens the guide into dish records in document order, copying
// restaurant metadata onto each record. Ordinals and IDs are zero; the
// catalog repository assigns them on insert.
func (g *Guide) Records() []*core.DishRecord {
	var records []*core.DishRecord
	for _, restaurant := range g.Restaurants {
		for _, dish := range restaurant.Dishes {
			records = append(records, &core.DishRecord{
				Name:        dish.Name,
				Description: dish.Description,
				Price:       dish.Price,
				Category:    dish.Category,
				Restaurant:  restaurant.Name,
				Cuisine:     restaurant.Cuisine,
				Address:     restaurant.Address,
				PriceRange:  restaurant.PriceRange,
			})
		}
	}
	return records
}

// DishCount returns the total number of dishes across all restaurants.
func (g *Guide) DishCount() int {
	count := 0
	for _, restaurant := range g.Restaurants {
		count += len(restaurant.Dishes)
	}
	return count
}

// parseSectionHeader extracts the restaurant name and star rating from the
// text after "## N.".
func parseSectionHeader(raw string) *Restaurant {
	rating := strings.Count(raw, "⭐")
	name := strings.TrimSpace(strings.ReplaceAll(raw, "⭐", ""))
	return &Restaurant{Name: name, Rating: rating}
}

// parseItemLine tries to parse a menu item line. Returns false for lines
// that don't look like items or whose names are noise.
func parseItemLine(line string) (Dish, bool) {
	for _, re := range itemRes {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := cleanDishName(m[1])
		description := ""
		if dm := descriptionRe.FindStringSubmatch(name); dm != nil && dm[1] != "" {
			name = strings.TrimSpace(dm[1])
			description = strings.TrimSpace(dm[2])
		}

		if !validDishName(name) {
			return Dish{}, false
		}

		price, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", "."), 64)
		if err != nil {
			price = 0
		}

		return Dish{Name: name, Description: description, Price: price}, true
	}
	return Dish{}, false
}

func cleanDishName(name string) string {
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.Trim(name, " -*")
}

func validDishName(name string) bool {
	if utf8.RuneCountInString(name) < 3 {
		return false
	}
	if strings.HasPrefix(name, "http") {
		return false
	}
	return !noiseWords[strings.ToLower(name)]
}
