// Package messages holds the user-facing text of the command-line tool in
// English and French. Message keys are the English format strings.
package messages

import (
	"fmt"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys.
const (
	Banner         = "AutoDNS Configuration Tool"
	DomainLine     = "Domain: %s"
	IPLine         = "IP Address: %s"
	InvalidAddress = "Error: '%s' is not a valid IP address."
	InvalidDomain  = "Error: '%s' does not appear to be a valid domain name."
	NotRoot        = "This program must be run as root (with sudo)."
	CreatedBackup  = "Created backup: %s"
	CreatedForward = "Created forward zone file: %s"
	CreatedReverse = "Created reverse zone file: %s"
	UpdatedConf    = "Updated Bind9 configuration: %s"
	Verifying      = "Verifying configuration..."
	CheckOK        = "Check passed: %s"
	CheckFailed    = "Check failed: %s (%s)"
	Restarting     = "Restarting Bind9 service..."
	RestartOK      = "Bind9 service restarted successfully."
	RestartFailed  = "Failed to restart Bind9 service. Check logs with: sudo journalctl -xe | grep named"
	TestingHeader  = "----- TESTING INSTRUCTIONS -----"
	TestingIntro   = "To test your DNS configuration, run the following commands:"
	TestForward    = "1. Check forward DNS lookup:"
	TestReverse    = "2. Check reverse DNS lookup:"
	TestPing       = "3. Test with ping:"
	TestResolvConf = "4. Update your resolv.conf (if needed):"
	Completed      = "DNS configuration completed successfully."
	Watching       = "Watching %s for changes..."
)

var french = map[string]string{
	Banner:         "Outil de Configuration AutoDNS",
	DomainLine:     "Domaine : %s",
	IPLine:         "Adresse IP : %s",
	InvalidAddress: "Erreur : '%s' n'est pas une adresse IP valide.",
	InvalidDomain:  "Erreur : '%s' ne semble pas être un nom de domaine valide.",
	NotRoot:        "Ce programme doit être exécuté en tant que root (avec sudo).",
	CreatedBackup:  "Sauvegarde créée : %s",
	CreatedForward: "Fichier de zone directe créé : %s",
	CreatedReverse: "Fichier de zone inverse créé : %s",
	UpdatedConf:    "Configuration Bind9 mise à jour : %s",
	Verifying:      "Vérification de la configuration...",
	CheckOK:        "Vérification réussie : %s",
	CheckFailed:    "Échec de la vérification : %s (%s)",
	Restarting:     "Redémarrage du service Bind9...",
	RestartOK:      "Service Bind9 redémarré avec succès.",
	RestartFailed:  "Échec du redémarrage du service Bind9. Consultez les journaux avec : sudo journalctl -xe | grep named",
	TestingHeader:  "----- INSTRUCTIONS DE TEST -----",
	TestingIntro:   "Pour tester votre configuration DNS, exécutez les commandes suivantes :",
	TestForward:    "1. Vérifier la résolution DNS directe :",
	TestReverse:    "2. Vérifier la résolution DNS inverse :",
	TestPing:       "3. Tester avec ping :",
	TestResolvConf: "4. Mettre à jour votre resolv.conf (si nécessaire) :",
	Completed:      "Configuration DNS terminée avec succès.",
	Watching:       "Surveillance de %s en cours...",
}

func init() {
	for key, fr := range french {
		if err := message.SetString(language.French, key, fr); err != nil {
			panic(fmt.Sprintf("messages: %v", err))
		}
		if err := message.SetString(language.English, key, key); err != nil {
			panic(fmt.Sprintf("messages: %v", err))
		}
	}
}

// Printer writes localized messages.
type Printer struct {
	p *message.Printer
}

// NewPrinter returns a printer for locale ("en", "fr", or any BCP 47 tag).
// Unknown locales fall back to English.
func NewPrinter(locale string) *Printer {
	tag := language.English
	if t, err := language.Parse(locale); err == nil {
		matcher := language.NewMatcher([]language.Tag{language.English, language.French})
		_, idx, _ := matcher.Match(t)
		if idx == 1 {
			tag = language.French
		}
	}
	return &Printer{p: message.NewPrinter(tag)}
}

// Sprintf formats the message identified by key.
func (p *Printer) Sprintf(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// Fprintln writes the message identified by key followed by a newline.
func (p *Printer) Fprintln(w io.Writer, key string, args ...any) {
	fmt.Fprintln(w, p.Sprintf(key, args...))
}

// Banner writes the header block printed before any work starts.
func (p *Printer) Banner(w io.Writer, domain, ip string) {
	const rule = "========================================"
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%*s\n", (len(rule)+len(p.Sprintf(Banner)))/2, p.Sprintf(Banner))
	fmt.Fprintln(w, rule)
	p.Fprintln(w, DomainLine, domain)
	p.Fprintln(w, IPLine, ip)
	fmt.Fprintln(w, "----------------------------------------")
}

// TestingInstructions writes the dig/ping/resolv.conf hints for a configured zone.
func (p *Printer) TestingInstructions(w io.Writer, domain, ip string) {
	fmt.Fprintln(w)
	p.Fprintln(w, TestingHeader)
	p.Fprintln(w, TestingIntro)

	fmt.Fprintln(w)
	p.Fprintln(w, TestForward)
	fmt.Fprintf(w, "   dig @%s %s\n", ip, domain)

	fmt.Fprintln(w)
	p.Fprintln(w, TestReverse)
	fmt.Fprintf(w, "   dig @%s -x %s\n", ip, ip)

	fmt.Fprintln(w)
	p.Fprintln(w, TestPing)
	fmt.Fprintf(w, "   ping %s\n", domain)

	fmt.Fprintln(w)
	p.Fprintln(w, TestResolvConf)
	fmt.Fprintf(w, "   echo 'nameserver %s' | sudo tee /etc/resolv.conf\n", ip)
	fmt.Fprintf(w, "   echo 'search %s' | sudo tee -a /etc/resolv.conf\n", domain)
}
