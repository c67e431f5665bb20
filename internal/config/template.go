package config

// DefaultConfigYAML is written by `dankpages config init`.
const DefaultConfigYAML = `# dankpages configuration

# Shown in the window title as "<page> - <app_name>".
app_name: Dank Pages

# Preset page set: two, three or four.
layout: four

# Or list pages explicitly; this wins over layout.
# pages: [counter, progress, name, theme]

# Initial theme: light or dark.
theme: dark

# Slider movement per keypress on the progress page.
progress_step: 1

# Only apply field changes on the page that owns the field.
strict_pages: false

log:
  level: info
  # Logs are discarded while the TUI runs unless a file is set.
  file: ""
`
