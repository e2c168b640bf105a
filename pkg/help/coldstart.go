package help

const ColdstartYAML = `# ai-digest Quick Start

input:
  notes: "Markdown notes named MM-DD-Recorder-*.md or MM-DD-MM-DD-Recorder-*.md"
  sections:
    tools: "## 工具推荐 with ### N. <name> items (推荐人 / 用途 / 网址)"
    experiences: "## AI 使用经验分享 with ### N. <title> items (分享人 / 经验)"

commands:
  extract: |
    ai-digest extract --input-dir notes --output public/data.json

  extract_with_summary: |
    ai-digest extract --summary public/summary.yaml

  images: |
    ai-digest images --logo public/logo.png --font /path/to/font.ttc

  check: |
    ai-digest check public/data.json

  list_runs: |
    ai-digest runs --limit 10

  run_details: |
    ai-digest run 5

config_file:
  name: "ai-digest.yaml (read from the working directory, or --config)"
  example: |
    input_dir: notes
    pattern: "*.md"
    exclude: ["README.md"]
    output: public/data.json
    public_dir: public
    logo: public/logo.png
    font: /System/Library/Fonts/PingFang.ttc
    title_zh: 边角聊 AI 讨论组
    title_en: LeftoverTalk AI Discussion Group

output:
  - "public/data.json (tools, experiences, people, stats)"
  - "public/favicon.ico, favicon-16x16.png, favicon-32x32.png, apple-touch-icon.png, logo-32.png"
  - "public/og-image.png (1200x630 social preview)"

history:
  - "Every extract run is recorded in SQLite (disable with --no-history)"
  - "Document content hashes show which notes changed between runs"
`
