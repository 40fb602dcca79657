package telegram

import (
	"fmt"
	"html"
	"strings"

	"guild-planning/internal/schedule"
	"guild-planning/pkg/weekcal"
)

const (
	parseModeHTML = "HTML"
	separator     = "━━━━━━━━━━━━━━━━━━━"

	helpText = "<b>Commandes du planning</b>\n\n" +
		"/planning (/p) : afficher le planning de la semaine\n" +
		"/ajouter_planning (/ap) &lt;jour&gt; &lt;texte&gt; : ajouter un événement\n" +
		"/effacer_planning (/ep) [jour] : effacer un jour, ou tout le planning\n" +
		"/debug_planning : nombre d'événements chargés\n\n" +
		"<i>Ajout et effacement réservés aux modérateurs.</i>"

	msgAddUsage      = "Usage : /ajouter_planning &lt;jour&gt; &lt;texte&gt;"
	msgNoPermission  = "❌ Vous devez être modérateur pour utiliser cette commande !"
	msgPermissionErr = "❌ Impossible de vérifier vos permissions, réessayez plus tard."
	msgRateLimited   = "⏳ Doucement ! Trop de commandes, réessayez dans un instant."
	msgClearedAll    = "✅ Tout le planning a été effacé !"
	msgNothingLoaded = "Aucun planning chargé en mémoire."
	msgNoEvent       = "<i>Aucune partie prévue.</i>"
)

// renderBoard formats the weekly view as Telegram HTML.
func renderBoard(title string, out schedule.ViewOutput) string {
	var sb strings.Builder

	first, last := out.Week.First(), out.Week.Last()
	sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(title)))
	sb.WriteString(fmt.Sprintf("Du %d %s au %d %s\n", first.DayOfMonth, first.Month, last.DayOfMonth, last.Month))

	for _, day := range out.Days {
		sb.WriteString("\n" + separator + "\n")
		sb.WriteString(fmt.Sprintf("<b>%s</b>\n", html.EscapeString(day.Day.Label())))

		if len(day.Events) == 0 {
			sb.WriteString(msgNoEvent + "\n")
			continue
		}
		bullets := make([]string, 0, len(day.Events))
		for _, e := range day.Events {
			bullets = append(bullets, "• "+html.EscapeString(e))
		}
		sb.WriteString(strings.Join(bullets, "\n\n") + "\n")
	}

	return sb.String()
}

func renderAdded(out schedule.AddOutput) string {
	return fmt.Sprintf("✅ Événement ajouté au planning du %s !", html.EscapeString(out.Day.Label()))
}

func renderCleared(out schedule.ClearOutput) string {
	if out.All {
		return msgClearedAll
	}
	if out.Removed == 0 {
		return fmt.Sprintf("ℹ️ Aucun événement pour %s", out.Day.Name)
	}
	return fmt.Sprintf("✅ Planning du %s effacé !", out.Day.Name)
}

func renderStatus(out schedule.StatusOutput) string {
	if out.Cached == 0 && (!out.StoredKnown || out.Stored == 0) {
		return msgNothingLoaded
	}
	msg := fmt.Sprintf("%d événements chargés pour ce serveur.", out.Cached)
	if out.StoredKnown && out.Stored != out.Cached {
		msg += fmt.Sprintf("\n⚠️ La base en contient %d.", out.Stored)
	}
	return msg
}

func renderGreeting(name string) string {
	name = html.EscapeString(name)
	lines := []string{
		"Bonjour %s !",
		"Je suis un bot qui donne des planning %s !",
		"J'espère que tu vas bien %s !",
		"Si tu as besoin d'aide, n'hésite pas à demander %s !",
		"Je suis en cours de développement %s !",
	}
	for i, l := range lines {
		lines[i] = fmt.Sprintf(l, name)
	}
	return strings.Join(lines, "\n")
}

func invalidDayMessage() string {
	return "❌ Jour invalide ! Utilisez : " + strings.Join(weekcal.ValidDayNames(), ", ")
}
