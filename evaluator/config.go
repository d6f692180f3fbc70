package evaluator

type configList []config
type configJSONList []configJSON

type config struct {
	LabelsFile     string
	JumpsFile      string
	LabelsColumn   int
	JumpsColumn    []int
	Comma          string
	ClusterNumber  int
	Models         []string
	ResultFileName string
}

type configJSON struct {
	LabelsFile     string   `json:"labels_file"`
	JumpsFile      string   `json:"jumps_file"`
	LabelsColumn   int      `json:"labels_column"`
	JumpsColumn    []int    `json:"jumps_column"`
	Comma          string   `json:"comma"`
	ClusterNumber  int      `json:"cluster_number"`
	Models         []string `json:"models"`
	ResultFileName string   `json:"result_file_name"`
}

func (cjl configJSONList) toConfig() configList {
	cl := make(configList, len(cjl))
	for i, cj := range cjl {
		c := &cl[i]
		c.LabelsFile = cj.LabelsFile
		c.JumpsFile = cj.JumpsFile
		c.LabelsColumn = cj.LabelsColumn
		c.JumpsColumn = make([]int, len(cj.JumpsColumn))
		copy(c.JumpsColumn, cj.JumpsColumn)
		c.Comma = cj.Comma

		c.ClusterNumber = cj.ClusterNumber
		if c.ClusterNumber == 0 {
			c.ClusterNumber = 4
		}

		c.Models = make([]string, len(cj.Models))
		copy(c.Models, cj.Models)
		if len(c.Models) == 0 {
			c.Models = []string{"uniform", "unigram", "bigram"}
		}

		c.ResultFileName = cj.ResultFileName
	}
	return cl
}
