package popup

import tea "github.com/charmbracelet/bubbletea"

// Popup defines the contract for the modal popups drawn over the carousel:
// help, go-to and confirmation prompts. The app's popup manager owns them.
type Popup interface {
	// Init returns any initial command, such as the go-to prompt's cursor blink.
	Init() tea.Cmd

	// Update handles messages and returns updated popup + command.
	Update(msg tea.Msg) (Popup, tea.Cmd)

	// View renders the popup content (without outer border/centering).
	View() string

	// SetSize sets the terminal cells available to the popup content.
	SetSize(width, height int)
}
