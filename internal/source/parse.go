package source

import (
	"encoding/json"
	"fmt"
	"html"
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jimezsa/findyourhome/internal/criteria"
	"github.com/jimezsa/findyourhome/internal/listing"
)

var listingTypes = map[string]criteria.PropertyType{
	"apartment":             criteria.PropertyApartment,
	"house":                 criteria.PropertyHouse,
	"singlefamilyresidence": criteria.PropertyHouse,
	"accommodation":         "",
	"residence":             "",
	"product":               "",
	"offer":                 "",
}

// ParseDocument extracts listings from schema.org JSON-LD blocks and from
// [data-listing] cards. base resolves relative links.
func ParseDocument(doc *goquery.Document, base, site string) []listing.Listing {
	out := parseJSONLDListings(doc, base, site)
	out = append(out, parseCards(doc, base, site)...)
	return dedupeListings(out)
}

func parseJSONLDListings(doc *goquery.Document, base, site string) []listing.Listing {
	var out []listing.Listing
	doc.Find("script[type='application/ld+json']").Each(func(_ int, s *goquery.Selection) {
		data, err := decodeJSONLD(s.Text())
		if err != nil {
			return
		}
		out = append(out, extractListings(data, base, site)...)
	})
	return out
}

func decodeJSONLD(raw string) (any, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "<!--")
	raw = strings.TrimSuffix(raw, "-->")
	raw = strings.ReplaceAll(raw, "\u2028", "")
	raw = strings.ReplaceAll(raw, "\u2029", "")
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("empty json-ld block")
	}

	var data any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return data, nil
}

func extractListings(data any, base, site string) []listing.Listing {
	var out []listing.Listing

	switch value := data.(type) {
	case []any:
		for _, item := range value {
			out = append(out, extractListings(item, base, site)...)
		}
	case map[string]any:
		types := typeNames(value["@type"])
		for _, typ := range types {
			if typ == "itemlist" {
				out = append(out, extractListings(value["itemListElement"], base, site)...)
				break
			}
			if typ == "listitem" {
				out = append(out, extractListings(value["item"], base, site)...)
				break
			}
			if _, ok := listingTypes[typ]; ok {
				if l, ok := listingFromNode(value, nodePropertyType(value), base, site); ok {
					return append(out, l)
				}
				break
			}
		}
		if graph, ok := value["@graph"]; ok {
			out = append(out, extractListings(graph, base, site)...)
		}
		if main, ok := value["mainEntity"]; ok {
			out = append(out, extractListings(main, base, site)...)
		}
	}

	return out
}

func hasType(node map[string]any, name string) bool {
	for _, typ := range typeNames(node["@type"]) {
		if typ == name {
			return true
		}
	}
	return false
}

// typeNames lowercases @type, which may be a string or a list.
func typeNames(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{strings.ToLower(strings.TrimSpace(v))}
	case []any:
		var out []string
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, strings.ToLower(strings.TrimSpace(s)))
			}
		}
		return out
	}
	return nil
}

func listingFromNode(node map[string]any, propertyType criteria.PropertyType, base, site string) (listing.Listing, bool) {
	l := listing.Listing{
		Source:       site,
		Title:        cleanText(stringValue(node["name"], node["headline"])),
		PropertyType: propertyType,
		Description:  truncate(cleanText(stringValue(node["description"])), 400),
		URL:          absoluteURL(base, stringValue(node["url"], node["@id"])),
	}

	l.Location = locationFromJSONLD(firstPresent(node, "address", "location", "containedInPlace"))
	l.Price, l.Currency = priceFromJSONLD(node)
	l.Bedrooms = intValue(node["numberOfBedrooms"], node["numberOfRooms"])
	l.Bathrooms = intValue(node["numberOfBathroomsTotal"], node["numberOfFullBathrooms"])
	l.Size = intValue(mapValue(node["floorSize"], "value"), node["floorSize"])
	l.Features = featureNames(node["amenityFeature"])
	l.Images = imageURLs(node["image"], base)
	if pets, ok := boolValue(node["petsAllowed"]); ok {
		l.PetsAllowed = pets
	}
	if from := stringValue(node["availabilityStarts"], mapValue(node["offers"], "availabilityStarts")); len(from) >= 10 {
		l.AvailableFrom = from[:10]
	}
	for _, key := range []string{"itemOffered", "about"} {
		item, ok := node[key].(map[string]any)
		if !ok {
			continue
		}
		nested, _ := listingFromNode(item, nodePropertyType(item), base, site)
		if l.Title == "" {
			l.Title = nested.Title
		}
		mergeFacts(&l, nested)
	}
	for _, feature := range l.Features {
		if strings.EqualFold(feature, "Furnished") {
			l.Furnished = true
		}
	}

	if l.Title == "" {
		return l, false
	}
	return l, true
}

func nodePropertyType(node map[string]any) criteria.PropertyType {
	for _, typ := range typeNames(node["@type"]) {
		if propertyType := listingTypes[typ]; propertyType != "" {
			return propertyType
		}
	}
	return ""
}

func mergeFacts(dst *listing.Listing, src listing.Listing) {
	if dst.Location == "" {
		dst.Location = src.Location
	}
	if dst.Bedrooms == 0 {
		dst.Bedrooms = src.Bedrooms
	}
	if dst.Bathrooms == 0 {
		dst.Bathrooms = src.Bathrooms
	}
	if dst.Size == 0 {
		dst.Size = src.Size
	}
	if dst.PropertyType == "" {
		dst.PropertyType = src.PropertyType
	}
	if dst.Price == 0 {
		dst.Price, dst.Currency = src.Price, src.Currency
	}
	if dst.AvailableFrom == "" {
		dst.AvailableFrom = src.AvailableFrom
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
	dst.PetsAllowed = dst.PetsAllowed || src.PetsAllowed
	dst.Features = append(dst.Features, src.Features...)
	dst.Images = append(dst.Images, src.Images...)
}

func firstPresent(node map[string]any, keys ...string) any {
	for _, key := range keys {
		if value, ok := node[key]; ok && value != nil {
			return value
		}
	}
	return nil
}

func priceFromJSONLD(node map[string]any) (int, string) {
	offers := node["offers"]
	if list, ok := offers.([]any); ok && len(list) > 0 {
		offers = list[0]
	}
	if offers == nil && hasType(node, "offer") {
		offers = node
	}
	offer, ok := offers.(map[string]any)
	if !ok {
		return 0, ""
	}
	currency := stringValue(offer["priceCurrency"], mapValue(offer["priceSpecification"], "priceCurrency"))
	amount := stringValue(offer["price"], mapValue(offer["priceSpecification"], "price"), offer["lowPrice"])
	price, symbol := ParsePrice(amount)
	if currency == "" {
		currency = symbol
	}
	return price, currencySymbol(currency)
}

func locationFromJSONLD(value any) string {
	switch v := value.(type) {
	case []any:
		var parts []string
		for _, item := range v {
			if loc := locationFromJSONLD(item); loc != "" {
				parts = append(parts, loc)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		if address, ok := v["address"]; ok {
			return locationFromJSONLD(address)
		}
		if loc := joinAddress(v); loc != "" {
			return loc
		}
		return stringValue(v["name"])
	case string:
		return cleanText(v)
	}
	return ""
}

func joinAddress(value map[string]any) string {
	parts := []string{
		stringValue(value["streetAddress"]),
		stringValue(value["addressLocality"]),
		stringValue(value["addressRegion"]),
		stringValue(value["postalCode"]),
		stringValue(value["addressCountry"]),
	}
	var cleaned []string
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			cleaned = append(cleaned, part)
		}
	}
	return strings.Join(cleaned, ", ")
}

func featureNames(value any) []string {
	var out []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			out = append(out, featureNames(item)...)
		}
	case map[string]any:
		if enabled, ok := boolValue(v["value"]); ok && !enabled {
			return nil
		}
		if name := stringValue(v["name"]); name != "" {
			out = append(out, name)
		}
	case string:
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func imageURLs(value any, base string) []string {
	var out []string
	switch v := value.(type) {
	case []any:
		for _, item := range v {
			out = append(out, imageURLs(item, base)...)
		}
	case map[string]any:
		if u := stringValue(v["url"], v["contentUrl"]); u != "" {
			out = append(out, absoluteURL(base, u))
		}
	case string:
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, absoluteURL(base, v))
		}
	}
	return out
}

// parseCards reads listing cards marked up as
// <article data-listing data-title=".." data-type=".."> with .price,
// .location and an anchor.
func parseCards(doc *goquery.Document, base, site string) []listing.Listing {
	var out []listing.Listing
	doc.Find("[data-listing]").Each(func(_ int, s *goquery.Selection) {
		title := cleanText(s.AttrOr("data-title", ""))
		if title == "" {
			title = cleanText(s.Find(".title, h2, h3").First().Text())
		}
		if title == "" {
			return
		}

		price, currency := ParsePrice(s.Find(".price").First().Text())
		propertyType, _ := criteria.ParsePropertyType(s.AttrOr("data-type", ""))
		l := listing.Listing{
			Source:       site,
			Title:        title,
			Location:     cleanText(s.Find(".location").First().Text()),
			Price:        price,
			Currency:     currency,
			PriceLabel:   cleanText(s.Find(".price").First().Text()),
			PropertyType: propertyType,
			Bedrooms:     intValue(s.AttrOr("data-bedrooms", "")),
			Bathrooms:    intValue(s.AttrOr("data-bathrooms", "")),
			Size:         intValue(s.AttrOr("data-size", "")),
			URL:          absoluteURL(base, s.Find("a[href]").First().AttrOr("href", "")),
		}
		s.Find(".amenity, .feature").Each(func(_ int, a *goquery.Selection) {
			if name := cleanText(a.Text()); name != "" {
				l.Features = append(l.Features, name)
			}
		})
		if img, ok := s.Find("img[src]").First().Attr("src"); ok {
			l.Images = []string{absoluteURL(base, img)}
		}
		out = append(out, l)
	})
	return out
}

var priceNumber = regexp.MustCompile(`\d[\d.,\s]*`)

// ParsePrice reads the first amount in text, e.g. "€1.200 /month" or
// "$1,850.00", and returns it with the currency symbol found next to it.
func ParsePrice(text string) (int, string) {
	text = cleanText(text)
	loc := priceNumber.FindStringIndex(text)
	if loc == nil {
		return 0, ""
	}
	raw := strings.Join(strings.Fields(text[loc[0]:loc[1]]), "")
	raw = strings.TrimRight(raw, ".,")
	if i := strings.LastIndexAny(raw, ".,"); i >= 0 && len(raw)-i-1 <= 2 {
		raw = raw[:i]
	}
	raw = strings.NewReplacer(".", "", ",", "").Replace(raw)
	amount, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ""
	}

	symbol := ""
	for _, candidate := range []string{"€", "$", "£", "EUR", "USD", "GBP"} {
		if strings.Contains(text, candidate) {
			symbol = currencySymbol(candidate)
			break
		}
	}
	return amount, symbol
}

func currencySymbol(code string) string {
	switch strings.ToUpper(strings.TrimSpace(code)) {
	case "EUR":
		return "€"
	case "USD":
		return "$"
	case "GBP":
		return "£"
	}
	return strings.TrimSpace(code)
}

func cleanText(value string) string {
	value = html.UnescapeString(value)
	return strings.Join(strings.Fields(value), " ")
}

func absoluteURL(base string, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://") {
		return href
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func stringValue(values ...any) string {
	for _, value := range values {
		switch v := value.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case json.Number:
			return v.String()
		case map[string]any:
			if name := stringValue(v["name"]); name != "" {
				return name
			}
		}
	}
	return ""
}

func intValue(values ...any) int {
	for _, value := range values {
		switch v := value.(type) {
		case float64:
			return toInt(v)
		case string:
			if n, ok := criteria.Number(v); ok {
				return toInt(n)
			}
		case map[string]any:
			if n := intValue(v["value"]); n != 0 {
				return n
			}
		}
	}
	return 0
}

func toInt(n float64) int {
	if math.IsNaN(n) || n >= float64(math.MaxInt) || n < float64(math.MinInt) {
		return 0
	}
	return int(n)
}

func boolValue(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return b, true
	}
	return false, false
}

func mapValue(value any, key string) any {
	m, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	return m[key]
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if limit <= 0 || len(runes) <= limit {
		return value
	}
	return strings.TrimSpace(string(runes[:limit])) + "..."
}

func dedupeListings(listings []listing.Listing) []listing.Listing {
	seen := map[string]struct{}{}
	out := make([]listing.Listing, 0, len(listings))
	for _, l := range listings {
		key := l.URL
		if key == "" {
			key = strings.ToLower(l.Title + "|" + l.Location)
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}
