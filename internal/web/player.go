package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// PlayerView is the phone page a player keeps open during the party. It
// polls the projection endpoint on a fixed interval; there is no push
// channel, so closing the page just stops the timer.
func PlayerView(code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, pageShell("Dead Air", `      <header>
        <h1 id="playerName">Dead Air</h1>
      </header>

      <section>
        <h2 id="roundTitle"></h2>
        <p id="message"></p>
        <div id="narrationBlock" hidden>
          <h3>Narration</h3>
          <p id="narration"></p>
        </div>
        <div id="privateBlock" hidden>
          <h3>Only you see this</h3>
          <p id="privateText"></p>
        </div>
      </section>

      <script>
        const code = "`+code+`";
        const pollMillis = 4000;

        async function poll() {
          const res = await fetch("/api/play/" + encodeURIComponent(code));
          const data = await res.json();
          if (!res.ok) {
            document.getElementById("message").textContent = data.error || "Could not load your game.";
            return;
          }
          render(data);
        }

        function render(data) {
          document.getElementById("playerName").textContent = data.playerName;
          const message = document.getElementById("message");
          const title = document.getElementById("roundTitle");
          const narrationBlock = document.getElementById("narrationBlock");
          const privateBlock = document.getElementById("privateBlock");
          narrationBlock.hidden = true;
          privateBlock.hidden = true;
          title.textContent = "";

          if (data.view === "waiting") {
            message.textContent = "Your story is still being written. Check back before the party.";
          } else if (data.view === "pregame") {
            message.textContent = "The game has not started. Keep this page open and wait for your host.";
          } else if (data.view === "awaiting_content") {
            message.textContent = "Round " + data.round + " is coming up. Content is on its way.";
          } else {
            message.textContent = "";
            title.textContent = data.roundTitle;
            document.getElementById("narration").textContent = data.narration;
            document.getElementById("privateText").textContent = data.privateText;
            narrationBlock.hidden = false;
            privateBlock.hidden = false;
          }
        }

        poll();
        setInterval(poll, pollMillis);
      </script>`))
		return err
	})
}
