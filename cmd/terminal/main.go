// El terminal de mano en línea de comandos: construye un Basket contra el
// backend configurado y lo maneja con órdenes de una línea. Es la superficie
// de referencia del motor; la disposición visual queda fuera de este núcleo.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/pedidos-sync/internal/application/basket"
	"github.com/jhoicas/pedidos-sync/internal/application/cart"
	"github.com/jhoicas/pedidos-sync/internal/application/syncer"
	"github.com/jhoicas/pedidos-sync/internal/application/usecase"
	"github.com/jhoicas/pedidos-sync/internal/infrastructure/backendhttp"
	"github.com/jhoicas/pedidos-sync/internal/infrastructure/devstore"
	"github.com/jhoicas/pedidos-sync/pkg/config"
	"github.com/jhoicas/pedidos-sync/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("backend", cfg.Backend.URL).
		Str("scope", cfg.Sync.Scope).
		Msg("iniciando terminal")

	settings, err := devstore.Open(cfg.Device.StorePath)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén del dispositivo")
	}
	defer settings.Close()

	client := backendhttp.New(cfg.Backend.URL, cfg.Backend.Timeout())
	areaUC := usecase.NewAreaUseCase(client, settings, log)
	requestUC := usecase.NewRequestUseCase(client, settings, log)

	b := basket.New(basket.Config{
		Scope:       cfg.Sync.Scope,
		QuietPeriod: cfg.Sync.QuietPeriod(),
		RetryDelay:  cfg.Sync.RetryDelay(),
	}, basket.Deps{
		Catalog:  client,
		Cart:     client,
		Settings: settings,
		Log:      log,
	})
	defer b.Close()

	b.Scheduler().OnStatus(func(st syncer.Status) {
		log.Info().Str("sync", string(st)).Msg("estado de sincronización")
	})
	b.Load()

	fmt.Println("terminal de pedidos — escriba 'help' para ver las órdenes")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]
		switch cmd {
		case "help":
			printHelp()
		case "areas":
			for _, a := range areaUC.Areas() {
				fmt.Printf("  %s  %s\n", a.ID, a.Name)
			}
		case "employees":
			if len(args) != 1 {
				fmt.Println("uso: employees <areaId>")
				continue
			}
			for _, e := range areaUC.Employees(args[0]) {
				fmt.Printf("  %s  %s\n", e.ID, e.Username)
			}
		case "use":
			if len(args) != 2 {
				fmt.Println("uso: use <areaId> <employeeId>")
				continue
			}
			if err := areaUC.SelectArea(args[0]); err != nil {
				fmt.Println("error:", err)
				continue
			}
			if err := areaUC.SelectResponsible(args[1]); err != nil {
				fmt.Println("error:", err)
				continue
			}
			b.Load()
			fmt.Println("pedido listo")
		case "catalog":
			for _, c := range b.Index().Categories() {
				fmt.Printf("%s (%s)\n", c.Denomination, c.ID)
				for _, p := range b.Index().ProductsIn(c.ID) {
					fmt.Printf("  %s  %s\n", p.ID, p.Name)
				}
			}
		case "add":
			if len(args) != 1 {
				fmt.Println("uso: add <productId>")
				continue
			}
			if err := b.Add(args[0]); err != nil {
				fmt.Println("error:", err)
			}
		case "rm":
			if len(args) != 1 {
				fmt.Println("uso: rm <key>")
				continue
			}
			b.Store().Remove(args[0])
		case "list":
			mode := cart.OrderInsertion
			if len(args) == 1 && args[0] == "abc" {
				mode = cart.OrderAlphabetical
			}
			for _, li := range b.Store().List(mode) {
				marker := " "
				if li.ExceedsStock() {
					marker = "!"
				}
				fmt.Printf("%s %s  [%s]\n", marker, li.Label(), li.Key)
			}
		case "edit":
			if len(args) != 1 {
				fmt.Println("uso: edit <key>")
				continue
			}
			if err := b.Session().Open(args[0], cart.OrderInsertion); err != nil {
				fmt.Println("error:", err)
				continue
			}
			runEditLoop(sc, b.Session())
		case "send":
			if err := requestUC.Activate(); err != nil {
				fmt.Println("error enviando el pedido:", err)
			} else {
				fmt.Println("pedido enviado a bodega")
			}
		case "move":
			if err := requestUC.MakeMovement(); err != nil {
				fmt.Println("el movimiento no se ha realizado:", err)
			} else {
				fmt.Println("movimiento realizado")
			}
		case "active":
			for _, r := range requestUC.Active() {
				fmt.Printf("  %s  %s  %s  %d productos  %s\n",
					r.ID, r.AreaName, r.EmployeeName, r.ProductCount,
					r.CreatedAt.Format("02/01/2006 15:04"))
			}
		case "status":
			fmt.Println("sync:", b.Scheduler().Status())
		case "quit", "exit":
			return
		default:
			fmt.Println("orden desconocida; 'help' muestra las disponibles")
		}
	}
}

// runEditLoop maneja la revisión secuencial: texto = nueva cantidad,
// enter vacío conserva la vigente, 'n' avanza, 'q' cierra.
func runEditLoop(sc *bufio.Scanner, es *cart.EditSession) {
	for es.Editing() {
		fmt.Printf("cantidad [%s]: ", es.Placeholder())
		if !sc.Scan() {
			es.Close()
			return
		}
		input := strings.TrimSpace(sc.Text())
		switch input {
		case "q":
			es.Close()
		case "n", "":
			if err := es.Advance(); err != nil {
				fmt.Println("error:", err)
				es.Close()
			}
		default:
			if !es.Input(input) {
				fmt.Println("cantidad inválida (entero o hasta dos decimales)")
				continue
			}
			if err := es.Commit(); err != nil {
				fmt.Println("error:", err)
			}
		}
	}
}

func printHelp() {
	fmt.Print(`órdenes:
  areas                    lista los locales
  employees <areaId>       lista responsables del área
  use <areaId> <empId>     selecciona local y responsable, adquiere pedido
  catalog                  muestra el catálogo por categorías
  add <productId>          agrega o incrementa un producto
  rm <key>                 elimina una línea
  list [abc]               lista líneas (abc = orden alfabético)
  edit <key>               abre la revisión secuencial de cantidades
  send                     envía el pedido a bodega
  move                     registra la salida del pedido
  active                   lista pedidos activos en bodega
  status                   estado de sincronización
  quit                     salir
`)
}
