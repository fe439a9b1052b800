package preview

import "html/template"

type pageVM struct {
	Title string
	Body  template.HTML
}

var pageTemplate = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
  body { max-width: 52rem; margin: 2rem auto; padding: 0 1rem; font: 16px/1.6 system-ui, sans-serif; }
  pre { padding: .75rem; overflow-x: auto; border-radius: 4px; }
  table { border-collapse: collapse; }
  td, th { border: 1px solid #ccc; padding: .25rem .5rem; }
  #status { position: fixed; top: .5rem; right: .75rem; font-size: 12px; color: #888; }
</style>
</head>
<body>
<div id="status">connecting</div>
<article id="content" class="markdown-body">
{{.Body}}
</article>
<script>
(function () {
  var content = document.getElementById("content");
  var status = document.getElementById("status");
  function connect() {
    var proto = location.protocol === "https:" ? "wss://" : "ws://";
    var ws = new WebSocket(proto + location.host + "/ws");
    ws.onopen = function () { status.textContent = "live"; };
    ws.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === "render") { content.innerHTML = msg.html; }
    };
    ws.onclose = function () {
      status.textContent = "reconnecting";
      setTimeout(connect, 1000);
    };
  }
  connect();
})();
</script>
</body>
</html>
`))
