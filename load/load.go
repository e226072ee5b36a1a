package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"svm"
	"svm/types"
)

// LoadString 加载矢量列表文本
func LoadString(s string, base types.RenderParameters) ([]types.RenderParameters, error) {
	return Load(strings.NewReader(s), base)
}

// LoadFile 加载矢量列表文件
func LoadFile(filename string, base types.RenderParameters) ([]types.RenderParameters, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Load(file, base)
}

// Load 逐行读取 "alpha beta [udc]", # 开头为注释
func Load(r io.Reader, base types.RenderParameters) ([]types.RenderParameters, error) {
	var list []types.RenderParameters
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = strings.TrimSpace(text[:i])
		}
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("第 %d 行: 需要 2 或 3 个字段, 得到 %d", line, len(fields))
		}
		p := base
		var err error
		if p.Vector.Alpha, err = (Value{Value: fields[0], Line: line}).ParseComponent(); err != nil {
			return nil, err
		}
		if p.Vector.Beta, err = (Value{Value: fields[1], Line: line}).ParseComponent(); err != nil {
			return nil, err
		}
		if len(fields) == 3 {
			if p.Udc, err = (Value{Value: fields[2], Line: line}).ParsePositive(base.Udc); err != nil {
				return nil, err
			}
		}
		list = append(list, p)
	}
	return list, scanner.Err()
}

// Export 每行输出 "alpha beta udc sector t1 t2 t0 u v w"
func Export(w io.Writer, results []svm.Result) error {
	writer := bufio.NewWriter(w)
	fmt.Fprintln(writer, "# alpha beta udc sector t1 t2 t0 u v w")
	for _, r := range results {
		d := r.Decomposition
		fmt.Fprintf(writer, "%g %g %g %d %.6f %.6f %.6f %d %d %d\n",
			r.Params.Vector.Alpha, r.Params.Vector.Beta, r.Params.Udc,
			int(r.Sector), d.T1, d.T2, d.T0,
			r.Duty.U, r.Duty.V, r.Duty.W)
	}
	return writer.Flush()
}
