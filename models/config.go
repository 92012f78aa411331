package models

type Config struct {
	Debug bool `envconfig:"GENBANK_DEBUG" default:"false"`

	Api struct {
		Port          string `envconfig:"GENBANK_API_PORT" default:"8080"`
		WorkDir       string `envconfig:"GENBANK_WORK_DIR" default:"/blast"`
		CountriesPath string `envconfig:"GENBANK_COUNTRIES_PATH"`
	}
	Blast struct {
		Path     string `envconfig:"GENBANK_BLASTN_PATH" default:"/usr/local/bin/blastn"`
		Database string `envconfig:"GENBANK_BLASTN_DB" default:"nt"`
		WordSize int    `envconfig:"GENBANK_BLASTN_WORD_SIZE" default:"28"`
		Remote   bool   `envconfig:"GENBANK_BLASTN_REMOTE" default:"true"`
	}
	Efetch struct {
		Path     string `envconfig:"GENBANK_EFETCH_PATH" default:"/usr/local/bin/efetch"`
		Database string `envconfig:"GENBANK_EFETCH_DB" default:"nuccore"`
	}
	Stamp struct {
		Label  string `envconfig:"GENBANK_STAMP_LABEL" default:"MycoLab"`
		WithId bool   `envconfig:"GENBANK_STAMP_WITH_ID" default:"true"`
	}
	Audit struct {
		DbPath         string `envconfig:"GENBANK_AUDIT_DB"`
		RetentionHours int    `envconfig:"GENBANK_RETENTION_HOURS" default:"72"`
	}
}
