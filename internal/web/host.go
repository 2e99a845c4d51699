package web

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// HostConsole is the host's control page. The PIN rides in the query
// string, the same credential every API call carries.
func HostConsole(gameID uint) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		id := utoa(gameID)
		_, err := io.WriteString(w, pageShell("Dead Air — Host", `      <header>
        <h1>Host console</h1>
        <p>Game `+id+`</p>
      </header>

      <section id="setupSection" hidden>
        <h2>Guest list</h2>
        <p>One name per line. Everyone on the list gets an intake link.</p>
        <textarea id="names" rows="8" placeholder="Margot&#10;Julian&#10;..."></textarea>
        <button id="saveSetup">Save guest list</button>
        <div id="setupResult" class="result"></div>
      </section>

      <section id="playersSection" hidden>
        <h2>Players</h2>
        <table>
          <thead><tr><th>Name</th><th>Intake</th><th>Invite</th></tr></thead>
          <tbody id="playerRows"></tbody>
        </table>
        <div id="inviteResult" class="result"></div>
      </section>

      <section id="roundSection" hidden>
        <h2>Rounds</h2>
        <p id="roundStatus"></p>
        <div id="roundButtons"></div>
        <div id="roundResult" class="result"></div>
      </section>

      <script>
        const gameId = "`+id+`";
        const pin = new URLSearchParams(window.location.search).get("pin") || "";
        const refreshMillis = 5000;

        async function refresh() {
          const res = await fetch("/api/games/" + gameId + "/host?pin=" + encodeURIComponent(pin));
          const data = await res.json();
          if (!res.ok) {
            document.getElementById("setupResult").textContent = data.error || "Failed to load game.";
            return;
          }
          render(data);
        }

        function render(data) {
          const hasPlayers = data.players.length > 0;
          document.getElementById("setupSection").hidden = hasPlayers;
          document.getElementById("playersSection").hidden = !hasPlayers;
          document.getElementById("roundSection").hidden = !hasPlayers;

          const rows = document.getElementById("playerRows");
          rows.innerHTML = "";
          for (const player of data.players) {
            const tr = document.createElement("tr");
            const name = document.createElement("td");
            name.textContent = player.name;
            const intake = document.createElement("td");
            intake.textContent = player.intakeComplete ? "complete" : "waiting";
            intake.className = player.intakeComplete ? "done" : "pending";
            const invite = document.createElement("td");
            const input = document.createElement("input");
            input.type = "email";
            input.placeholder = "email";
            input.value = player.inviteEmail || "";
            const btn = document.createElement("button");
            btn.textContent = "Send link";
            btn.className = "quiet";
            btn.addEventListener("click", () => invitePlayer(player.id, input.value.trim()));
            invite.append(input, btn);
            tr.append(name, intake, invite);
            rows.append(tr);
          }

          const status = document.getElementById("roundStatus");
          status.textContent = data.storyGenerated
            ? "Current round: " + data.currentRound
            : "Your story is still being written. Rounds unlock once it is published.";
          const buttons = document.getElementById("roundButtons");
          buttons.innerHTML = "";
          for (let n = 0; n <= 4; n++) {
            const btn = document.createElement("button");
            btn.textContent = n === 0 ? "Pre-game" : "Round " + n;
            btn.className = n === data.currentRound ? "" : "quiet";
            btn.disabled = !data.storyGenerated;
            btn.addEventListener("click", () => setRound(n));
            buttons.append(btn);
          }
        }

        async function invitePlayer(playerId, email) {
          const result = document.getElementById("inviteResult");
          result.textContent = "Sending invite...";
          const body = { gameId: Number(gameId), playerId, hostPin: pin };
          if (email) body.email = email;
          const res = await fetch("/api/invite/player", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify(body)
          });
          const data = await res.json();
          result.textContent = res.ok ? "Invite sent to " + data.email : (data.error || "Invite failed.");
        }

        async function setRound(round) {
          const result = document.getElementById("roundResult");
          const res = await fetch("/api/games/" + gameId + "/round", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ hostPin: pin, round })
          });
          const data = await res.json();
          result.textContent = res.ok ? "" : (data.error || "Could not change round.");
          refresh();
        }

        document.getElementById("saveSetup").addEventListener("click", async () => {
          const result = document.getElementById("setupResult");
          const players = document.getElementById("names").value
            .split("\n").map(line => line.trim()).filter(line => line.length > 0);
          result.textContent = "Saving...";
          const res = await fetch("/api/games/" + gameId + "/setup", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify({ hostPin: pin, players })
          });
          const data = await res.json();
          if (!res.ok) {
            result.textContent = data.error || "Setup failed.";
            return;
          }
          result.textContent = "";
          refresh();
        });

        refresh();
        setInterval(refresh, refreshMillis);
      </script>`))
		return err
	})
}
