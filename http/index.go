package http

// indexHTML is the single-page upload form. Kept inline; there is no
// other UI asset.
const indexHTML = `<!DOCTYPE html>
<html lang="pt">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Extrator de Emails de Dadores</title>
<style>
body { font-family: sans-serif; max-width: 40rem; margin: 4rem auto; padding: 0 1rem; }
form { border: 1px solid #ccc; border-radius: 8px; padding: 2rem; }
button { padding: 0.5rem 1.5rem; }
p.hint { color: #666; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Extrator de Emails de Dadores</h1>
<form action="/extract" method="post" enctype="multipart/form-data">
  <p><input type="file" name="file" accept="application/pdf" required></p>
  <p class="hint">Apenas ficheiros PDF. Máximo 50 MB.</p>
  <button type="submit">Extrair emails</button>
</form>
</body>
</html>
`
