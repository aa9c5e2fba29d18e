// Package contact builds the links used to reach a customer or a technician
// (phone, WhatsApp, maps) and the distances derived from their coordinates.
package contact

import (
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/Michaeldoss/apptecnico1-sub001/internal/domain/entities"
)

const (
	DefaultCountryCode = "55"

	whatsAppBase   = "https://wa.me/"
	mapsSearchURL  = "https://www.google.com/maps/search/"
	mapsDirections = "https://www.google.com/maps/dir/"

	earthRadiusKm = 6371.0
)

var ErrInvalidPhone = errors.New("invalid phone number")

type Coordinates struct {
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`
	Longitude float64 `json:"longitude" mapstructure:"longitude"`
}

func (c Coordinates) String() string {
	return strconv.FormatFloat(c.Latitude, 'f', -1, 64) + "," + strconv.FormatFloat(c.Longitude, 'f', -1, 64)
}

// Links groups every outbound link for one contact.
type Links struct {
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Maps     string `json:"maps,omitempty"`
}

// International returns the phone digits prefixed with the country code.
// Brazilian local numbers (DDD + 8 or 9 digits) get DefaultCountryCode.
func International(phone string) (string, error) {
	digits := entities.OnlyDigits(phone)
	switch {
	case len(digits) == 10 || len(digits) == 11:
		return DefaultCountryCode + digits, nil
	case len(digits) >= 12 && len(digits) <= 15:
		return digits, nil
	}
	return "", ErrInvalidPhone
}

func TelURL(phone string) (string, error) {
	n, err := International(phone)
	if err != nil {
		return "", err
	}
	return "tel:+" + n, nil
}

// WhatsAppURL opens a chat with phone, optionally pre-filled with text.
func WhatsAppURL(phone, text string) (string, error) {
	n, err := International(phone)
	if err != nil {
		return "", err
	}
	link := whatsAppBase + n
	if text = strings.TrimSpace(text); text != "" {
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
	}
	return link, nil
}

func MapsSearchURL(query string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("query", strings.TrimSpace(query))
	return mapsSearchURL + "?" + q.Encode()
}

// MapsDirectionsURL routes to destination, from origin when it is known.
func MapsDirectionsURL(origin *Coordinates, destination string) string {
	q := url.Values{}
	q.Set("api", "1")
	q.Set("destination", strings.TrimSpace(destination))
	if origin != nil {
		q.Set("origin", origin.String())
	}
	return mapsDirections + "?" + q.Encode()
}

// ForClient builds the links for a client; an unusable phone leaves those links empty.
func ForClient(c entities.Client, address string, message string) Links {
	var l Links
	_, phone := c.Contact()
	l.Phone, _ = TelURL(phone)
	l.WhatsApp, _ = WhatsAppURL(phone, message)
	if strings.TrimSpace(address) != "" {
		l.Maps = MapsSearchURL(address)
	}
	return l
}

// Locate returns the coordinates when both are present, otherwise fallback.
func Locate(lat, lng *float64, fallback Coordinates) Coordinates {
	if lat == nil || lng == nil {
		return fallback
	}
	return Coordinates{Latitude: *lat, Longitude: *lng}
}

// Distance is the great-circle distance between a and b in kilometres.
func Distance(a, b Coordinates) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLat := lat2 - lat1
	dLng := radians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Min(1, math.Sqrt(h)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
