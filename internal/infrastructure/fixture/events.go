package fixture

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/desparches/backend/internal/domain/entity"
)

// curatedEvents are the hand-written Bogotá events shown on first run; the
// rest of the catalog is generated procedurally to fill the map.
func curatedEvents(now time.Time) []entity.Event {
	at := func(daysAhead, hour, minute int) time.Time {
		d := now.AddDate(0, 0, daysAhead)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC)
	}
	return []entity.Event{
		{
			ID:          "evt001",
			Title:       "Concierto de Rock Sinfónico",
			Description: "Una noche épica con las mejores bandas de rock interpretando sus éxitos con una orquesta sinfónica completa. ¡No te lo puedes perder!",
			Date:        at(7, 20, 0),
			ImageURL:    "https://picsum.photos/seed/rock/400/300",
			Location:    entity.Location{Lat: 4.6583, Lng: -74.0622, Address: "Movistar Arena, Bogotá"},
			Category:    "musica",
			Organizer:   "Live Events Co.",
			Website:     "https://example.com/concierto-rock",
		},
		{
			ID:          "evt002",
			Title:       "Festival Gastronómico \"Alimentarte\"",
			Description: "Explora la cocina de más de 20 países en un solo lugar. Food trucks, música en vivo y actividades para toda la familia.",
			Date:        at(10, 12, 0),
			ImageURL:    "https://picsum.photos/seed/food/400/300",
			Location:    entity.Location{Lat: 4.658, Lng: -74.093, Address: "Parque Simón Bolívar, Bogotá"},
			Category:    "gastronomia",
			Organizer:   "Corazón Verde",
			Website:     "https://example.com/festival-gastronomico",
		},
		{
			ID:          "evt003",
			Title:       "Exposición de Botero",
			Description: "Sumérgete en el mundo del arte con obras del maestro Fernando Botero, el artista colombiano más reconocido a nivel mundial.",
			Date:        at(15, 10, 0),
			ImageURL:    "https://picsum.photos/seed/art/400/300",
			Location:    entity.Location{Lat: 4.600, Lng: -74.072, Address: "Museo Botero, La Candelaria"},
			Category:    "arte",
			Organizer:   "Banco de la República",
			Website:     "https://example.com/expo-arte",
		},
		{
			ID:          "evt004",
			Title:       "Noche de Cine al Aire Libre: Clásicos de los 80",
			Description: "Revive la magia de los 80s bajo las estrellas. Trae tu manta y disfruta de una película icónica en pantalla gigante.",
			Date:        at(5, 19, 0),
			ImageURL:    "https://picsum.photos/seed/cine/400/300",
			Location:    entity.Location{Lat: 4.704, Lng: -74.047, Address: "Parque de la 93, Bogotá"},
			Category:    "cine",
			Organizer:   "CineBajoLasEstrellas",
			Website:     "https://example.com/cine-aire-libre",
		},
		{
			ID:          "evt005",
			Title:       "Colombia Startup & Investor Summit",
			Description: "Aprende de los líderes de la industria sobre las últimas tendencias en marketing digital, e-commerce y startups.",
			Date:        at(20, 9, 0),
			ImageURL:    "https://picsum.photos/seed/business/400/300",
			Location:    entity.Location{Lat: 4.667, Lng: -74.05, Address: "Cámara de Comercio de Bogotá, Sede Salitre"},
			Category:    "negocios",
			Organizer:   "InnovaTech",
			Website:     "https://example.com/conferencia-digital",
		},
		{
			ID:          "evt006",
			Title:       "Final Liga BetPlay: Millonarios vs Santa Fe",
			Description: "El clásico capitalino más esperado del año. Vive la pasión del fútbol en el estadio El Campín. ¿Quién se llevará la estrella?",
			Date:        at(12, 17, 0),
			ImageURL:    "https://picsum.photos/seed/futbol/400/300",
			Location:    entity.Location{Lat: 4.647, Lng: -74.076, Address: "Estadio El Campín, Bogotá"},
			Category:    "deportes",
			Organizer:   "Dimayor",
			Website:     "https://example.com/final-futbol",
		},
		{
			ID:          "evt007",
			Title:       "Baum Festival",
			Description: "El festival de música electrónica más grande de Colombia regresa con un lineup internacional de primer nivel. ¡Prepárate para bailar sin parar!",
			Date:        at(25, 16, 0),
			ImageURL:    "https://picsum.photos/seed/techno/400/300",
			Location:    entity.Location{Lat: 4.678, Lng: -74.043, Address: "Corferias, Bogotá"},
			Category:    "musica",
			Organizer:   "Páramo Presenta",
			Website:     "https://example.com/baum-festival",
		},
		{
			ID:          "evt008",
			Title:       "Feria Internacional del Libro de Bogotá (FILBo)",
			Description: "El evento cultural más importante del país. Encuentros con autores, lanzamientos de libros y una inmensa oferta editorial.",
			Date:        at(30, 10, 0),
			ImageURL:    "https://picsum.photos/seed/books/400/300",
			Location:    entity.Location{Lat: 4.628, Lng: -74.064, Address: "Corferias, Bogotá"},
			Category:    "arte",
			Organizer:   "Cámara Colombiana del Libro",
			Website:     "https://example.com/filbo",
		},
	}
}

var eventNouns = map[string][]string{
	"musica":      {"Concierto", "Festival", "Toque", "Recital", "Jam Session", "Show Acústico"},
	"gastronomia": {"Festival", "Feria", "Tour Culinario", "Cata", "Mercado Gourmet", "Brunch Especial"},
	"cine":        {"Proyección", "Festival", "Maratón de Cine", "Estreno Exclusivo", "Cine-Foro", "Ciclo de Cine"},
	"arte":        {"Exposición", "Galería", "Taller Creativo", "Performance", "Subasta de Arte", "Muestra Colectiva"},
	"negocios":    {"Conferencia", "Cumbre", "Seminario", "Rueda de Negocios", "Taller de Emprendimiento", "Networking"},
	"deportes":    {"Torneo", "Campeonato", "Carrera 5k", "Maratón", "Partido Amistoso", "Exhibición"},
}

var (
	adjectives = []string{"Gran", "Internacional", "Anual", "Urbano", "Clásico", "Exclusivo", "Innovador", "Familiar", "Nocturno", "Cultural"}
	organizers = []string{"Páramo Presenta", "Ocesa Colombia", "Idartes", "Corferias", "Cámara de Comercio de Bogotá", "Live Events Co.", "Gourmet Experience", "InnovaTech", "Cultura Viva", "Pro-Deportes SAS", "Cine Colombia", "Bogotá Events"}
	venueTypes = []string{"Centro de Convenciones", "Teatro", "Parque", "Estadio", "Auditorio", "Galería de Arte", "Club Social", "Plaza Pública", "Restaurante Exclusivo", "Hotel Boutique"}
	streets    = []string{"del Sol", "de la Luna", "Central", "Norte", "del Río", "de los Artistas", "de la Innovación", "Principal", "de la República", "de la Cultura"}
)

// Bogotá bounding box for generated venues.
const (
	latMin = 4.5
	latMax = 4.8
	lngMin = -74.15
	lngMax = -74.02
)

func pick(rng *rand.Rand, list []string) string {
	return list[rng.Intn(len(list))]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Events builds the seed catalog: the curated events followed by
// procedurally generated ones up to count, with dates spread over the next
// 180 days.
func Events(now time.Time, count int) []entity.Event {
	events := curatedEvents(now)
	rng := rand.New(rand.NewSource(now.UnixNano()))
	for i := len(events) + 1; i <= count; i++ {
		category := entity.DefaultCategories[rng.Intn(len(entity.DefaultCategories))].ID
		noun := pick(rng, eventNouns[category])
		title := fmt.Sprintf("%s %s de %s", pick(rng, adjectives), noun, capitalize(category))

		day := now.AddDate(0, 0, 1+rng.Intn(180))
		date := time.Date(day.Year(), day.Month(), day.Day(), 9+rng.Intn(13), 30*rng.Intn(2), 0, 0, time.UTC)

		events = append(events, entity.Event{
			ID:          fmt.Sprintf("evt%03d", i),
			Title:       title,
			Description: fmt.Sprintf("Un evento imperdible para los amantes de %s. Disfruta de una experiencia única con %ss de primer nivel en el corazón de la ciudad.", category, strings.ToLower(noun)),
			Date:        date,
			ImageURL:    fmt.Sprintf("https://picsum.photos/seed/%s%d/400/300", strings.ReplaceAll(title, " ", ""), i),
			Location: entity.Location{
				Lat:     latMin + rng.Float64()*(latMax-latMin),
				Lng:     lngMin + rng.Float64()*(lngMax-lngMin),
				Address: fmt.Sprintf("%s %s, Bogotá", pick(rng, venueTypes), pick(rng, streets)),
			},
			Category:  category,
			Organizer: pick(rng, organizers),
			Website:   fmt.Sprintf("https://example.com/evento-%d", i),
		})
	}
	return events
}
