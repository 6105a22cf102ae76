package client

func staticCard(title, subtitle, description, image string, bullets []string, primary, secondary CTA) Card {
	return Card{
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
		Bullets:     bullets,
		Image:       "/assets/services/" + image,
		Primary:     primary,
		Secondary:   &secondary,
	}
}

var personalCatalog = []CatalogGroup{
	{
		ID:          "massages",
		Name:        "Masajes a domicilio",
		Description: "Elige tu experiencia principal. Ideal para aliviar tensión, descansar y recargar energía.",
		Items: []Card{
			staticCard("Masaje", "Drenaje Linfático",
				"Técnica suave orientada a estimular el sistema linfático para apoyar la eliminación de líquidos y la sensación de liviandad corporal.",
				"drenaje-linfatico.jpg",
				[]string{"Mejora la circulación linfática", "Apoya la reducción de inflamación", "Favorece la sensación de descanso", "Mejora el aspecto de la piel"},
				CTA{"Agendar", "/contacto"}, CTA{"Ver disponibilidad", "/contacto"}),
			staticCard("Masaje", "Descontracturante",
				"Ideal para aliviar tensión muscular (espalda, cuello, hombros). Enfocado en liberar zonas cargadas y mejorar la movilidad.",
				"descontracturante.jpg",
				[]string{"Alivia dolor y tensión muscular", "Mejora postura y flexibilidad", "Reduce estrés acumulado", "Aumenta la sensación de energía"},
				CTA{"Reservar ahora", "/contacto"}, CTA{"Hablar por WhatsApp", "/contacto"}),
			staticCard("Masaje", "Deportivo",
				"Pensado para personas activas y deportistas. Ayuda a preparar el músculo, prevenir molestias y apoyar la recuperación.",
				"deportivo.jpg",
				[]string{"Apoya la recuperación post-entreno", "Ayuda a prevenir lesiones", "Reduce dolor muscular y fatiga", "Mejora circulación y rendimiento"},
				CTA{"Agendar sesión", "/contacto"}, CTA{"Cotizar para equipos", "/empresas"}),
			staticCard("Masaje", "Relajante",
				"Una experiencia tranquila para desconectar, bajar el estrés y mejorar el bienestar general. Ideal para recargar energía.",
				"relajante.jpg",
				[]string{"Reduce estrés y ansiedad", "Mejora el descanso y ánimo", "Favorece la relajación profunda", "Apoya el bienestar general"},
				CTA{"Agendar", "/contacto"}, CTA{"Ver servicios", "/servicios"}),
		},
	},
	{
		ID:          "gifts",
		Name:        "Regalos y promociones",
		Description: "Opciones para sorprender o regalonearte. Coordinación simple por contacto.",
		Items: []Card{
			staticCard("Giftcard", "Día del Profesor",
				"Regala una experiencia de bienestar. Giftcard equivalente a un masaje, en la comodidad del hogar (ideal para sorprender).",
				"giftcard-profesor.jpg",
				[]string{"Regalo útil y memorable", "Perfecto para fechas especiales", "Coordinación simple por contacto", "Experiencia premium y cálida"},
				CTA{"Comprar / Consultar", "/contacto"}, CTA{"Empresas (beneficios)", "/empresas"}),
			staticCard("Promo", "Día de Relajo",
				"Pack promocional con opciones de masaje y extras (según disponibilidad). Perfecto para regalar o regalonearte.",
				"promo-mama.jpg",
				[]string{"Incluye aromaterapia / musicoterapia (según pack)", "Duración aproximada 60 min", "Opciones: relajante, descontracturante o mixto", "Ideal para fechas como Día de la Madre"},
				CTA{"Quiero esta promo", "/contacto"}, CTA{"Agendar", "/contacto"}),
		},
	},
}

var businessCatalog = []CatalogGroup{
	{
		ID:          "corporate",
		Name:        "Bienestar corporativo",
		Description: "Sesiones pensadas para equipos: pausas saludables, alivio de tensión y un ambiente laboral más liviano.",
		Items: []Card{
			staticCard("Masaje", "Descontracturante (Oficina)",
				"Ideal para aliviar tensión muscular (espalda, cuello, hombros). Perfecto para rutinas de escritorio y estrés acumulado.",
				"descontracturante.jpg",
				[]string{"Alivia dolor y tensión muscular", "Mejora postura y movilidad", "Reduce estrés acumulado", "Excelente para pausas saludables"},
				CTA{"Cotizar para empresas", "/empresas"}, CTA{"Hablar por WhatsApp", "/contacto"}),
			staticCard("Masaje", "Relajante (Pausa saludable)",
				"Experiencia tranquila para desconectar y recargar energía. Ideal para jornadas intensas o semanas de alta carga.",
				"relajante.jpg",
				[]string{"Reduce estrés y ansiedad", "Mejora bienestar general", "Aporta calma y enfoque", "Perfecto para actividades internas"},
				CTA{"Solicitar propuesta", "/empresas"}, CTA{"Consultar disponibilidad", "/contacto"}),
		},
	},
	{
		ID:          "events",
		Name:        "Activaciones y eventos",
		Description: "Ideal para actividades internas, aniversarios, celebraciones o eventos corporativos. Llevamos la experiencia a tu lugar.",
		Items: []Card{
			staticCard("Masaje", "Deportivo (Equipos / Actividad)",
				"Pensado para personas activas. En empresas funciona excelente para jornadas de movimiento, equipos deportivos internos o eventos.",
				"deportivo.jpg",
				[]string{"Apoya recuperación post-actividad", "Reduce fatiga muscular", "Mejora circulación y rendimiento", "Ideal para equipos y eventos"},
				CTA{"Cotizar evento", "/empresas"}, CTA{"Hablar por WhatsApp", "/contacto"}),
		},
	},
	{
		ID:          "benefits",
		Name:        "Beneficios y regalos corporativos",
		Description: "Giftcards y beneficios para colaboradores: un regalo útil y memorable, fácil de coordinar.",
		Items: []Card{
			staticCard("Giftcard", "Para colaboradores",
				"Regala una experiencia de bienestar. Coordinación simple por contacto, ideal para reconocer y motivar.",
				"giftcard-profesor.jpg",
				[]string{"Regalo útil y memorable", "Perfecto para fechas especiales", "Coordinación simple", "Experiencia premium y cálida"},
				CTA{"Quiero giftcards", "/empresas"}, CTA{"Consultar", "/contacto"}),
		},
	},
}

// StaticCatalog returns a copy of the built-in catalog for listing.
func StaticCatalog(listing Listing) []CatalogGroup {
	source := personalCatalog
	if listing == Business {
		source = businessCatalog
	}
	groups := make([]CatalogGroup, len(source))
	for i, group := range source {
		items := make([]Card, len(group.Items))
		for j, card := range group.Items {
			card.Bullets = append([]string(nil), card.Bullets...)
			if card.Secondary != nil {
				secondary := *card.Secondary
				card.Secondary = &secondary
			}
			items[j] = card
		}
		group.Items = items
		groups[i] = group
	}
	return groups
}
