package start

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗██████╗ ███████╗ ██████╗██╗  ██╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔══██╗██╔════╝██╔════╝██║ ██╔╝
 ██║   ██║██║   ██║██║  ███╔╝ ██║  ██║█████╗  ██║     █████╔╝
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║  ██║██╔══╝  ██║     ██╔═██╗
 ╚██████╔╝╚██████╔╝██║███████╗██████╔╝███████╗╚██████╗██║  ██╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝╚═════╝ ╚══════╝ ╚═════╝╚═╝  ╚═╝`

const bannerCompact = "Q U I Z D E C K"

// bannerWidth is the widest line of bannerArt.
const bannerWidth = 62

// renderBanner returns the app banner in the primary color, falling back to
// a compact form on narrow terminals.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerWidth+2 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
