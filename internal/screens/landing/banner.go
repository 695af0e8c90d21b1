package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sankalan/internal/ui/theme"
)

const bannerArt = `
 ███████╗ █████╗ ███╗   ██╗██╗  ██╗ █████╗ ██╗      █████╗ ███╗   ██╗
 ██╔════╝██╔══██╗████╗  ██║██║ ██╔╝██╔══██╗██║     ██╔══██╗████╗  ██║
 ███████╗███████║██╔██╗ ██║█████╔╝ ███████║██║     ███████║██╔██╗ ██║
 ╚════██║██╔══██║██║╚██╗██║██╔═██╗ ██╔══██║██║     ██╔══██║██║╚██╗██║
 ███████║██║  ██║██║ ╚████║██║  ██╗██║  ██║███████╗██║  ██║██║ ╚████║
 ╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═══╝`

const bannerCompact = "S A N K A L A N"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 70

// renderBanner returns the banner in the primary color, falling back to
// the compact form on narrow terminals.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
