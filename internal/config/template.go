package config

// StarterTemplate is the scaffold written by 'ff-fonts init'.
const StarterTemplate = `# ff-fonts configuration
# Docs: https://github.com/bianoble/ff-fonts

# Google Fonts families, fetched and inlined as base64.
google:
  - name: Lato
    formats: ["300", "300i", "700"]
    display: swap

  # - name: Rubik

# Font files stored next to this config (or under input_dir).
local:
  - name: Brand Sans
    file: fonts/brand-sans.woff
    weight: normal
    style: normal
    # display: block

# input_dir: ./            # base directory for local files
# output_dir: ./dist/      # where ff-fonts.<md5>.json is written
# format: woff             # woff, woff2 or ttf
# timeout: 30s
`
