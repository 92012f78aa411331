package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/mycolab/genbank/models/dtos"
	"github.com/mycolab/genbank/services/execution"

	"github.com/spf13/cobra"
)

var searchRequest = dtos.NewSearchRequestDto()

var searchCmd = &cobra.Command{
	Use:   "search [fasta]",
	Short: "Search a FASTA file without starting the API",
	Long: `Run the query pipeline on a FASTA file (or stdin when omitted)
and write the resulting records to stdout as JSON.`,
	Example: "  genbank search its1.fasta --results 10 --sort-key coverage,pct_identity",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runSearch,
}

func init() {
	flags := searchCmd.Flags()
	flags.BoolVar(&searchRequest.Location, "location", searchRequest.Location, "annotate records with their country")
	flags.BoolVar(&searchRequest.Clean, "clean", searchRequest.Clean, "strip gap characters")
	flags.BoolVar(&searchRequest.Accession, "accession", searchRequest.Accession, "attach the GenBank record")
	flags.BoolVar(&searchRequest.Hsp, "hsp", searchRequest.Hsp, "attach the alignment statistics")
	flags.BoolVar(&searchRequest.Stamp, "stamp", searchRequest.Stamp, "stamp the query description")
	flags.IntVarP(&searchRequest.Results, "results", "n", searchRequest.Results, "maximum number of hits")
	flags.Float64VarP(&searchRequest.Match, "match", "m", searchRequest.Match, "minimum percent identity")
	flags.Float64Var(&searchRequest.Coverage, "coverage", searchRequest.Coverage, "minimum percent query coverage")
	flags.StringVar(&searchRequest.SortKey, "sort-key", searchRequest.SortKey, "comma separated sort keys")
	flags.StringVar(&searchRequest.SortDir, "sort-dir", searchRequest.SortDir, "asc or desc")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var fasta []byte
	if len(args) == 1 {
		fasta, err = ioutil.ReadFile(args[0])
	} else {
		fasta, err = ioutil.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(fasta)) == "" {
		return fmt.Errorf("no sequence given")
	}

	req := searchRequest
	req.Sequence = string(fasta)
	body, err := json.Marshal(req)
	if err != nil {
		return err
	}

	svc, err := NewServices(cfg, execution.NewProcessRunner())
	if err != nil {
		return err
	}
	defer svc.Close()

	results, _, err := svc.Search.Query(cmd.Context(), body)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
