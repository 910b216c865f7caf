package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/query"
	"github.com/arpan-52/VLA-Calibrator-Database-Tools/internal/storage"
	"github.com/spf13/cobra"
)

var (
	flagQueryName  string
	flagQueryBand  string
	flagQueryFirst int
)

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query [file]",
		Short: "Query a saved calibrator XML file",
		Long: `Query a calibrator XML file produced by the scrape command.

Without flags an interactive menu is shown. With --name, --band, or
--first the matching query runs once and the command exits. When no
file argument is given, the usual output names are probed in the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runQuery,
	}

	cmd.Flags().StringVar(&flagQueryName, "name", "", "Look up one calibrator by exact J2000 IAU_NAME")
	cmd.Flags().StringVar(&flagQueryBand, "band", "", "List calibrators observed in the given band (e.g. 20cm)")
	cmd.Flags().IntVar(&flagQueryFirst, "first", 0, "Show the first N calibrators")

	return cmd
}

func runQuery(cmd *cobra.Command, args []string) error {
	explicit := ""
	if len(args) > 0 {
		explicit = args[0]
	}
	path, err := storage.Resolve(explicit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Loading XML file: %s\n", path)
	col, err := storage.Load(path)
	if err != nil {
		return fmt.Errorf("loading calibrators: %w", err)
	}

	fmt.Fprintf(out, "Loaded XML with %d calibrators.\n", col.Len())
	if col.Len() == 0 {
		fmt.Fprintln(out, "No calibrators found in XML file.")
		return nil
	}

	idx := query.New(col)

	switch {
	case flagQueryName != "":
		findByName(out, idx, flagQueryName)
		return nil
	case flagQueryBand != "":
		listByBand(out, idx, flagQueryBand)
		return nil
	case flagQueryFirst > 0:
		showFirst(out, idx, flagQueryFirst)
		return nil
	}

	return runInteractive(cmd.InOrStdin(), out, idx)
}

// runInteractive drives the menu loop until the user exits or input ends.
func runInteractive(in io.Reader, out io.Writer, idx *query.Index) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintln(out, "\nChoose an option:")
		fmt.Fprintln(out, "1. Find calibrator by J2000 IAU_NAME")
		fmt.Fprintln(out, "2. List calibrators with a specified band")
		fmt.Fprintln(out, "3. Show first 5 calibrators")
		fmt.Fprintln(out, "4. Exit")
		fmt.Fprint(out, "Enter choice (1-4): ")

		choice, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out, "\nExiting.")
			return nil
		}

		switch choice {
		case "1":
			fmt.Fprint(out, "Enter exact J2000 IAU_NAME (e.g., 0005+383): ")
			name, ok := readLine(scanner)
			if !ok {
				fmt.Fprintln(out, "\nOperation cancelled.")
				continue
			}
			if name == "" {
				fmt.Fprintln(out, "Please enter a valid calibrator name.")
				continue
			}
			findByName(out, idx, name)

		case "2":
			fmt.Fprint(out, "Enter band name (e.g., 20cm, 6cm): ")
			band, ok := readLine(scanner)
			if !ok {
				fmt.Fprintln(out, "\nOperation cancelled.")
				continue
			}
			if band == "" {
				fmt.Fprintln(out, "Please enter a valid band name.")
				continue
			}
			listByBand(out, idx, band)

		case "3":
			showFirst(out, idx, 5)

		case "4", "exit":
			fmt.Fprintln(out, "Exiting.")
			return nil

		default:
			fmt.Fprintln(out, "Invalid choice. Please enter 1, 2, 3, or 4.")
		}
	}
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func findByName(w io.Writer, idx *query.Index, name string) {
	if cal, ok := idx.FindByName(name); ok {
		WriteCalibrator(w, cal)
		return
	}

	fmt.Fprintf(w, "Calibrator '%s' not found.\n", name)
	if similar := idx.SimilarNames(name); len(similar) > 0 {
		if len(similar) > 5 {
			similar = similar[:5]
		}
		fmt.Fprintf(w, "Similar names found: %s\n", strings.Join(similar, ", "))
	}
}

func listByBand(w io.Writer, idx *query.Index, band string) {
	matches := idx.ListByBand(band)
	fmt.Fprintf(w, "Found %d calibrators with band '%s'. Showing first 10:\n", len(matches), band)
	if len(matches) > 10 {
		matches = matches[:10]
	}
	for i, cal := range matches {
		fmt.Fprintf(w, "  %d. %s\n", i+1, cal.Name())
	}
}

func showFirst(w io.Writer, idx *query.Index, n int) {
	fmt.Fprintf(w, "First %d calibrators in the database:\n", n)
	for i, cal := range idx.First(n) {
		fmt.Fprintf(w, "  %d. %s (%d bands)\n", i+1, cal.Name(), len(cal.Bands))
	}
}
