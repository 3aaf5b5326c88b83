// Package catalog holds the static lists of purchasable entities. The
// data is compiled in; there is no backing store and no behavior beyond
// turning an entry into a cart line item candidate.
package catalog

import (
	"fmt"

	"robux-storefront/internal/domain"
)

// robuxImageRef is shared by every currency package.
const robuxImageRef = "https://i.imgur.com/MTv7K4H.png"

// RobuxPackage is a virtual-currency bundle. Amount is the number of
// Robux the package credits; it never enters pricing math.
type RobuxPackage struct {
	Amount  int64
	Price   int64
	Popular bool
}

func (p RobuxPackage) ID() string { return fmt.Sprintf("robux-%d", p.Amount) }

func (p RobuxPackage) LineItem() domain.LineItem {
	return domain.LineItem{
		ID:            p.ID(),
		DisplayName:   fmt.Sprintf("%d Robux", p.Amount),
		UnitPrice:     p.Price,
		Kind:          domain.KindRobuxPackage,
		ImageRef:      robuxImageRef,
		PackageAmount: p.Amount,
	}
}

// Collectible is a tradable in-game item (a pet).
type Collectible struct {
	Key         string
	Name        string
	DisplayName string
	Price       int64
	ImageRef    string
}

func (c Collectible) ID() string { return "pet-" + c.Key }

func (c Collectible) LineItem() domain.LineItem {
	return domain.LineItem{
		ID:          c.ID(),
		DisplayName: c.DisplayName,
		UnitPrice:   c.Price,
		Kind:        domain.KindCollectible,
		ImageRef:    c.ImageRef,
	}
}

// ClassUnlock grants a playable character class.
type ClassUnlock struct {
	Key         string
	Name        string
	DisplayName string
	Price       int64
}

func (c ClassUnlock) ID() string { return "class-" + c.Key }

func (c ClassUnlock) LineItem() domain.LineItem {
	return domain.LineItem{
		ID:          c.ID(),
		DisplayName: c.DisplayName,
		UnitPrice:   c.Price,
		Kind:        domain.KindClassUnlock,
	}
}

var packages = []RobuxPackage{
	{Amount: 400, Price: 300},
	{Amount: 1200, Price: 900, Popular: true},
	{Amount: 3000, Price: 2300},
	{Amount: 6000, Price: 4600, Popular: true},
	{Amount: 9000, Price: 6900},
	{Amount: 20000, Price: 15300, Popular: true},
}

var collectibles = []Collectible{
	{Key: "raccoon", Name: "Raccoon", DisplayName: "Енот", Price: 549, ImageRef: "/assets/pets/raccoon.png"},
	{Key: "t-rex", Name: "T-Rex", DisplayName: "Т-Рекс", Price: 899, ImageRef: "/assets/pets/t-rex.png"},
	{Key: "disco-bee", Name: "Disco Bee", DisplayName: "Диско Пчела", Price: 999, ImageRef: "/assets/pets/disco-bee.png"},
	{Key: "queen-bee", Name: "Queen Bee", DisplayName: "Королева Пчел", Price: 299, ImageRef: "/assets/pets/queen-bee.png"},
	{Key: "mimic-octopus", Name: "Mimic Octopus", DisplayName: "Осьминог", Price: 299, ImageRef: "/assets/pets/mimic-octopus.png"},
	{Key: "dragonfly", Name: "Dragonfly", DisplayName: "Стрекоза", Price: 299, ImageRef: "/assets/pets/dragonfly.png"},
}

var classes = []ClassUnlock{
	{Key: "cyborg", Name: "Cyborg", DisplayName: "Киборг", Price: 600},
	{Key: "pyromaniac", Name: "Pyromaniac", DisplayName: "Пироман", Price: 600},
	{Key: "big-game-hunter", Name: "Big Game Hunter", DisplayName: "Охотник", Price: 600},
	{Key: "assassin", Name: "Assassin", DisplayName: "Ассасин", Price: 500},
	{Key: "poison-master", Name: "Poison Master", DisplayName: "Мастер Ядов", Price: 200},
	{Key: "alien", Name: "Alien", DisplayName: "Пришелец", Price: 100},
}

// Packages returns the currency packages in display order.
func Packages() []RobuxPackage {
	out := make([]RobuxPackage, len(packages))
	copy(out, packages)
	return out
}

// Collectibles returns the pet catalog in display order.
func Collectibles() []Collectible {
	out := make([]Collectible, len(collectibles))
	copy(out, collectibles)
	return out
}

// Classes returns the class-unlock catalog in display order.
func Classes() []ClassUnlock {
	out := make([]ClassUnlock, len(classes))
	copy(out, classes)
	return out
}

// Find resolves a catalog ID to a cart line item candidate. The second
// return reports whether the ID exists.
func Find(id string) (domain.LineItem, bool) {
	for _, p := range packages {
		if p.ID() == id {
			return p.LineItem(), true
		}
	}
	for _, c := range collectibles {
		if c.ID() == id {
			return c.LineItem(), true
		}
	}
	for _, c := range classes {
		if c.ID() == id {
			return c.LineItem(), true
		}
	}
	return domain.LineItem{}, false
}
